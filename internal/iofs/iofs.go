// Package iofs manages files of ctryrisk outside of the data flow:
// directories, the default config and the continents table.
package iofs

import (
	_ "embed"
	"os"

	"github.com/gnames/ctryrisk/pkg/config"
	"gopkg.in/yaml.v3"
)

//go:embed config.yaml
var ConfigYAML string

//go:embed continents.yaml
var ContinentsYAML string

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

func EnsureConfigFile(homeDir string) error {
	return ensureFile(config.ConfigFilePath(homeDir), ConfigYAML)
}

func EnsureContinentsFile(homeDir string) error {
	return ensureFile(config.ContinentsFilePath(homeDir), ContinentsYAML)
}

// ensureFile writes embedded content unless the file exists already.
func ensureFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return CopyFileError(path, err)
	}

	return nil
}

type continentsFile struct {
	Continents map[string]string `yaml:"continents"`
}

// LoadContinents reads the country to continent table from the config
// directory. The embedded table is used when the file does not exist.
func LoadContinents(homeDir string) (map[string]string, error) {
	path := config.ContinentsFilePath(homeDir)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		path = "embedded continents.yaml"
		data, err = []byte(ContinentsYAML), nil
	}
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	return parseContinents(path, data)
}

func parseContinents(path string, data []byte) (map[string]string, error) {
	var cf continentsFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, ContinentsFileError(path, err)
	}
	res := make(map[string]string, len(cf.Continents))
	for k, v := range cf.Continents {
		res[k] = v
	}
	return res, nil
}
