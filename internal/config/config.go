package config

import (
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

// DefaultSessionSecret signs cookies when no secret is configured. It is
// public, so deployments must override it.
const DefaultSessionSecret = "balanceu-development-secret-change-me"

type Application struct {
	// Host is the public origin used when composing shareable links.
	Host    string  `koanf:"host"`
	Port    int     `koanf:"port"`
	Session Session `koanf:"session"`
	Intro   Intro   `koanf:"intro"`
}

type Session struct {
	Secret     string `koanf:"secret"`
	MaxAgeDays int    `koanf:"maxagedays"`
	Secure     bool   `koanf:"secure"`
}

type Intro struct {
	Duration time.Duration `koanf:"duration"`
}

func Defaults() Application {
	return Application{
		Host: "http://localhost:3000",
		Port: 8181,
		Session: Session{
			Secret:     DefaultSessionSecret,
			MaxAgeDays: 365,
			Secure:     false,
		},
		Intro: Intro{
			Duration: 2 * time.Second,
		},
	}
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Defaults(), "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "BALANCEU_",
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "BALANCEU_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	if app.Session.Secret == DefaultSessionSecret {
		log.Warn("session.secret is the built-in default, set BALANCEU_SESSION_SECRET before exposing the server")
	}

	return app, nil
}
