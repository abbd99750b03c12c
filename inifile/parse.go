// Package inifile parses the INI profiles the stashq CLI reads its service
// configuration from.
package inifile

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// File represents a parsed INI file. Section and key names are
// case-insensitive; a repeated key keeps its last value.
type File struct {
	sections map[string]map[string]string
}

// Parse reads an INI file from the given reader. Lines starting with "#" or
// ";" are comments; keys before any section header are ignored.
func Parse(r io.Reader) (*File, error) {
	f := &File{sections: make(map[string]map[string]string)}
	var current map[string]string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			name := strings.ToLower(strings.Trim(line, "[]"))
			if f.sections[name] == nil {
				f.sections[name] = make(map[string]string)
			}
			current = f.sections[name]
			continue
		}

		if current == nil {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		current[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}

	return f, scanner.Err()
}

// ParseFile reads and parses an INI file from disk.
func ParseFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Get returns the value for a key in a section, or "" if absent.
func (f *File) Get(section, key string) string {
	s := f.sections[strings.ToLower(section)]
	if s == nil {
		return ""
	}
	return s[strings.ToLower(key)]
}

// GetInt returns the integer value for a key in a section, or fallback when
// the key is absent or not an integer.
func (f *File) GetInt(section, key string, fallback int) int {
	v := f.Get(section, key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// GetBool returns the boolean value for a key in a section, or fallback when
// the key is absent or not a boolean.
func (f *File) GetBool(section, key string, fallback bool) bool {
	v := f.Get(section, key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// HasSection returns true if the file contains the named section.
func (f *File) HasSection(section string) bool {
	_, ok := f.sections[strings.ToLower(section)]
	return ok
}
