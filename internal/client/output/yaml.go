package output

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// OutputYAML prints data in YAML format
func OutputYAML(data interface{}) {
	if err := WriteYAML(os.Stdout, data); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode YAML: %v\n", err)
		os.Exit(1)
	}
}

// WriteYAML encodes data as YAML to w
func WriteYAML(w io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return err
	}
	return encoder.Close()
}
