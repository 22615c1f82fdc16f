// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
)

// Configuration - the settings for the indexd tools
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory"`
	Database      string               `gluamapper:"database"`
	Logging       logger.Configuration `gluamapper:"logging"`
}

// default settings, overridden by the configuration file
func defaultConfiguration() *Configuration {
	return &Configuration{
		DataDirectory: ".",
		Database:      "offchain",
		Logging: logger.Configuration{
			Directory: "log",
			File:      "indexd.log",
			Size:      1048576,
			Count:     10,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "error",
			},
		},
	}
}

// Read - parse a configuration file and resolve relative paths
func Read(fileName string) (*Configuration, error) {
	config := defaultConfiguration()

	err := ParseConfigurationFile(fileName, config)
	if nil != err {
		return nil, err
	}

	// paths in the file are relative to the data directory
	if !filepath.IsAbs(config.Database) {
		config.Database = filepath.Join(config.DataDirectory, config.Database)
	}
	if !filepath.IsAbs(config.Logging.Directory) {
		config.Logging.Directory = filepath.Join(config.DataDirectory, config.Logging.Directory)
	}

	return config, nil
}
