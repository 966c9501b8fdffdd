// Package types contains small value types shared by the frame pump and the CLI.
package types
