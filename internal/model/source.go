// Package model defines the data structures shared by the fastgen layers.
package model

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// Directive is a single line of the directive file that invokes the binding
// wrapper. It only lives for the duration of a scan.
type Directive struct {
	File    Path
	Line    int
	ABIPath string
	Package string
}

// Entry is a resolved catalog entry.
type Entry struct {
	Package string `yaml:"package"`
	ABIPath Path   `yaml:"abi"`
	Source  Path   `yaml:"source"`
}
