package config

import "time"

type GoogleConfig struct {
	CloudStorageCredential string        `env:"CLOUD_STORAGE_CREDENTIAL,required"`
	CloudStorageBucket     string        `env:"CLOUD_STORAGE_BUCKET,required"`
	SignedURLExpired       time.Duration `env:"SIGNED_URL_EXPIRED" envDefault:"15m"`
}
