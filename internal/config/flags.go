// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"time"
)

// URLValue holds an absolute http(s) URL. It implements the flag.Value
// interface.
type URLValue struct {
	URL string
}

// String returns the stored URL, or an empty string when unset.
func (u *URLValue) String() string {
	if u == nil {
		return ""
	}
	return u.URL
}

// Set validates that s is an absolute http or https URL with a host.
func (u *URLValue) Set(s string) error {
	if err := validateHTTPURL(s); err != nil {
		return err
	}
	u.URL = s
	return nil
}

func validateHTTPURL(s string) error {
	parsed, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", s, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("url scheme must be http or https")
	}
	if parsed.Host == "" {
		return errors.New("url must contain a host")
	}
	return nil
}

// ParseFlags parses the process command line.
//
// Flags:
//
//	-data-dir launcher working directory
//	-java java executable
//	-min-java minimum accepted java major version
//	-java-download-url page opened when java is missing
//	-eula-url license agreement page
//	-core-url core artifact download url
//	-download-timeout core download timeout (e.g., "10m")
//	-command-timeout external command timeout (e.g., "2m"), 0 disables
//	-d preference database DSN
//	-no-core-watch disable the core directory watcher
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	return parseFlags(args)
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("acgs-launcher", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var javaDownloadURL, eulaURL, coreURL URLValue
	var dataDir, javaBinary, databaseDSN, jsonConfigPath string
	var minJava int
	var downloadTimeout, commandTimeout time.Duration
	var noCoreWatch bool

	fs.StringVar(&dataDir, "data-dir", "", "Launcher working directory")
	fs.StringVar(&javaBinary, "java", "", "Java executable")
	fs.IntVar(&minJava, "min-java", 0, "Minimum java major version")
	fs.Var(&javaDownloadURL, "java-download-url", "Java download page")
	fs.Var(&eulaURL, "eula-url", "License agreement page")
	fs.Var(&coreURL, "core-url", "Core artifact download url")
	fs.DurationVar(&downloadTimeout, "download-timeout", 0, "Core download timeout (e.g., 10m)")
	fs.DurationVar(&commandTimeout, "command-timeout", 0, "External command timeout (e.g., 2m)")
	fs.StringVar(&databaseDSN, "d", "", "Preference database DSN")
	fs.BoolVar(&noCoreWatch, "no-core-watch", false, "Disable the core directory watcher")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			DataDir:         dataDir,
			JavaBinary:      javaBinary,
			MinJavaMajor:    minJava,
			JavaDownloadURL: javaDownloadURL.String(),
			EulaURL:         eulaURL.String(),
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			CoreURL:        coreURL.String(),
			RequestTimeout: downloadTimeout,
		},
		Process: Process{
			CommandTimeout: commandTimeout,
		},
		Workers: Workers{
			CoreWatchDisabled: noCoreWatch,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
