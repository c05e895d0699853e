package logger

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/iurnickita/saleshub/internal/logger/config"
	"go.uber.org/zap"
)

const maxLoggedBody = 4 << 10

type readCloser struct {
	io.Reader
	io.Closer
}

func NewZapLog(cfg config.Config) (*zap.Logger, error) {
	// преобразуем текстовый уровень логирования в zap.AtomicLevel
	lvl, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	// создаём новую конфигурацию логера
	zapcfg := zap.NewProductionConfig()
	// устанавливаем уровень
	zapcfg.Level = lvl
	// создаём логер на основе конфигурации
	return zapcfg.Build()
}

// RequestLogMdlw - middleware-логер для входящих HTTP-запросов.
func RequestLogMdlw(zaplog *zap.Logger) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			// request body: в лог попадает только начало, обработчик читает тело целиком
			bodyBytes, _ := io.ReadAll(io.LimitReader(r.Body, maxLoggedBody))
			r.Body = readCloser{
				Reader: io.MultiReader(bytes.NewReader(bodyBytes), r.Body),
				Closer: r.Body,
			}

			zaplog.Info("got incoming HTTP request",
				zap.String("path", r.URL.Path),
				zap.String("method", r.Method),
				zap.String("body", string(bodyBytes)),
			)

			wl := NewResponseWriterLogger(w)

			handlerStart := time.Now()
			h.ServeHTTP(wl, r)
			handlerDuration := time.Since(handlerStart)

			zaplog.Info("send HTTP response",
				zap.String("code", strconv.Itoa(wl.statusCode)),
				zap.String("location", wl.Header().Get("Location")),
				zap.String("length", strconv.Itoa(wl.length)),
				zap.String("duration", handlerDuration.String()),
			)
		})
	}
}

type responseWriterLogger struct {
	http.ResponseWriter
	statusCode int
	length     int
}

func NewResponseWriterLogger(w http.ResponseWriter) *responseWriterLogger {
	return &responseWriterLogger{w, http.StatusOK, 0}
}

func (wl *responseWriterLogger) WriteHeader(code int) {
	wl.statusCode = code
	wl.ResponseWriter.WriteHeader(code)
}

func (wl *responseWriterLogger) Write(b []byte) (n int, err error) {
	n, err = wl.ResponseWriter.Write(b)
	wl.length += n
	return
}
