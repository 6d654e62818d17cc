package internal

import (
	"io"

	"github.com/starford/compsman/internal/storage"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config  *Config
	request *Request
	store   storage.Provider
	stdout  io.Writer
	stderr  io.Writer
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithRequest sets the run request.
func WithRequest(req *Request) Option {
	return func(a *application) {
		a.request = req
	}
}

// WithStorage sets the document file provider.
func WithStorage(store storage.Provider) Option {
	return func(a *application) {
		a.store = store
	}
}

// WithStdout sets the writer that receives printed metadata.
func WithStdout(w io.Writer) Option {
	return func(a *application) {
		a.stdout = w
	}
}

// WithStderr sets the writer that receives log output.
func WithStderr(w io.Writer) Option {
	return func(a *application) {
		a.stderr = w
	}
}
