/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/suparena/crewlookup/datastore/ddb"
)

// Config holds all configuration for the crew lookup service
type Config struct {
	TableName string
	Region    string
	LogLevel  string
	Port      string
	DynamoDB  DynamoDBConfig
}

// DynamoDBConfig holds client overrides for the crew table
type DynamoDBConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
}

// Load reads configuration from the environment, after loading a .env file if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PORT", "8080")

	region := v.GetString("REGION")
	if region == "" {
		region = v.GetString("AWS_REGION")
	}

	cfg := &Config{
		TableName: v.GetString("TABLE_NAME"),
		Region:    region,
		LogLevel:  v.GetString("LOG_LEVEL"),
		Port:      v.GetString("PORT"),
		DynamoDB: DynamoDBConfig{
			Endpoint:  v.GetString("DYNAMODB_ENDPOINT"),
			AccessKey: v.GetString("AWS_ACCESS_KEY"),
			SecretKey: v.GetString("AWS_SECRET_KEY"),
		},
	}
	return cfg, nil
}

// Validate checks the settings every entrypoint needs
func (c *Config) Validate() error {
	if c.TableName == "" {
		return fmt.Errorf("TABLE_NAME is required")
	}
	return nil
}

// ClientConfig converts the settings into DynamoDB client options
func (c *Config) ClientConfig() ddb.ClientConfig {
	return ddb.ClientConfig{
		Region:    c.Region,
		AccessKey: c.DynamoDB.AccessKey,
		SecretKey: c.DynamoDB.SecretKey,
		Endpoint:  c.DynamoDB.Endpoint,
	}
}
