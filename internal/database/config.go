package database

type Config struct {
	// Path to the bbolt file holding the match result log
	FilePath string `envconfig:"COLORPARTY_DB_PATH" default:"colorparty.db"`
}
