package config

type Config struct {
	// Внешний справочник подсказок. Пусто - читаем из базы
	SuggestedValuesAddr string `env:"SUGGESTED_VALUES_ADDRESS"`
}
