package csvstore

type Config struct {
	Path string `envconfig:"STORE_PATH" default:"accounts.csv"`
}
