package modules

import (
	"bytes"
	"crypto/md5" // #nosec G501 - content fingerprint, not a security boundary
	"encoding/hex"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/yacobolo/scsstypes/internal/config"
)

// Namer produces the scoped identifier for a local name declared in filename.
type Namer func(local, filename, css string) string

// NamerFor returns the namer for a scoped-names mode.
func NamerFor(mode config.ScopedNames, length int) Namer {
	if mode == config.ScopedProduction {
		return ProductionNamer(length)
	}
	return DevelopmentNamer
}

// DevelopmentNamer renders readable identifiers such as "button__primary--1a2b3".
func DevelopmentNamer(local, filename, css string) string {
	component := componentName(filename)
	if css == "" {
		return component + "__" + local
	}
	return component + "__" + local + "--" + fingerprint(component, local, css)[:5]
}

// ProductionNamer renders short hashed identifiers that always start with a letter.
func ProductionNamer(length int) Namer {
	if length <= 0 {
		length = 5
	}
	return func(local, filename, css string) string {
		sum := md5.Sum([]byte(DevelopmentNamer(local, filename, css))) // #nosec G401
		hash := hex.EncodeToString(sum[:])

		start := strings.IndexAny(hash, "abcdef")
		if start < 0 {
			start = 0
		}
		end := min(start+length, len(hash))
		return hash[start:end]
	}
}

// componentName strips the module suffix and the first underscore from a file name
func componentName(filename string) string {
	base := strings.Replace(filepath.Base(filename), "_", "", 1)
	for _, suffix := range []string{".module.scss", ".module.sass", ".module.css"} {
		if strings.HasSuffix(base, suffix) {
			return strings.TrimSuffix(base, suffix)
		}
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func fingerprint(component, local, css string) string {
	payload := struct {
		Component string `json:"component"`
		Name      string `json:"name"`
		CSS       string `json:"css"`
	}{component, local, css}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(payload)

	sum := md5.Sum(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))) // #nosec G401
	return hex.EncodeToString(sum[:])
}
