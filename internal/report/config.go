package report

type Config struct {
	Path string `envconfig:"EXPORT_PATH" default:"accounts.xlsx"`
}
