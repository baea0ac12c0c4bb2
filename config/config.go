// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct and is a mix of settings
// available from a settings file and those from the command line
type Config struct {
	// KmerSize is the length of the k-mers cut from each read. The graph's
	// nodes are the (KmerSize - 1)-mers of the reads
	KmerSize int `mapstructure:"kmer-size"`

	// Seed initializes the pseudo-random source used to break ties
	// between paths with equal weight and length
	Seed int64 `mapstructure:"seed"`
}

// New returns a new Config struct populated by Viper settings
// and/or command line arguments
func New() *Config {
	viper.SetDefault("kmer-size", 22)
	viper.SetDefault("seed", 9001)

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("unable to decode settings into config: %v", err)
	}

	return c
}
