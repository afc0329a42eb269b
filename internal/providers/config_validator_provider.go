package providers

import (
	"clarity/internal/structures"
	"errors"
	"path/filepath"
	"strings"

	"github.com/gookit/validate"
)

// localPath accepts absolute and relative paths. Relative paths resolve
// against the working directory of the daemon.
func init() {
	validate.AddValidator("localPath", func(val any) bool {
		s, ok := val.(string)
		if !ok {
			return false
		}
		if s == "" {
			return true
		}
		return !strings.ContainsRune(s, 0) && filepath.Clean(s) != "."
	})
	validate.AddGlobalMessages(map[string]string{
		"localPath": "{field} value should be a file system path",
	})
}

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

// Validate checks the struct tags, then the rules that depend on the
// persistence driver.
func (v *CnfValidator) Validate() error {
	vd := validate.Struct(v.conf)
	if !vd.Validate() {
		return vd.Errors
	}

	p := v.conf.Persistence
	switch p.Driver {
	case "file":
		if p.FilePath == "" {
			return errors.New("persistence.filePath is required for the file driver")
		}
	case "redis":
		if p.Redis.Addr == "" {
			return errors.New("persistence.redis.addr is required for the redis driver")
		}
	}
	return nil
}
