// saleshub-token выпускает токен пользователя для куки saleshubUserToken.
//
//	saleshub-token [-k secret] <user code>
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/iurnickita/saleshub/internal/auth"
	"github.com/iurnickita/saleshub/internal/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return errors.New("user code is required")
	}
	userCode := args[len(args)-1]

	cfg, err := config.GetConfig(args[:len(args)-1])
	if err != nil {
		return err
	}
	if cfg.Auth.SecretKey == "" {
		return errors.New("secret key is not set")
	}

	cookie, err := auth.NewAuth(cfg.Auth).IssueCookie(userCode)
	if err != nil {
		return err
	}

	fmt.Printf("%s=%s\n", cookie.Name, cookie.Value)
	return nil
}
