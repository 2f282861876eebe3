package prometheus

// Config дефолт URL применяется на уровне app после файлового конфига
type Config struct {
	URL string `envconfig:"URL"`
}
