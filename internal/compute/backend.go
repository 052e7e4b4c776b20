package compute

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	// ErrUnsupportedBackend indicates a name outside the supported set.
	ErrUnsupportedBackend = errors.New("compute: backend not supported")

	// ErrBackendUnavailable indicates the backend is not compiled in or
	// no suitable device exists.
	ErrBackendUnavailable = errors.New("compute: backend not installed")

	// ErrBackendBroken indicates the backend is present but failed to
	// initialize.
	ErrBackendBroken = errors.New("compute: backend installed but failed to initialize")
)

// Supported is the fixed set of selectable backends.
var Supported = []string{"cpu", "blas32", "cuda"}

var factories = map[string]func() (engine, Special, error){
	"cpu": func() (engine, Special, error) {
		return NewCPU(), stdSpecial{}, nil
	},
	"blas32": func() (engine, Special, error) {
		b := NewBLAS32()
		// Must happen before any array exists under this backend:
		// values already rounded to float32 cannot regain lost bits.
		if err := b.EnableHighPrecision(); err != nil {
			return nil, nil, err
		}
		return b, stdSpecial{}, nil
	},
	"cuda": func() (engine, Special, error) {
		c, err := NewCUDA()
		if err != nil {
			return nil, nil, err
		}
		return c, stdSpecial{}, nil
	},
}

var (
	activeName    string
	activeBackend Backend
	activeSpecial Special
)

func init() {
	if err := SetBackend("cpu"); err != nil {
		panic(err)
	}
}

// SetBackend makes the named backend the process-wide active engine.
// Selecting the already-active backend is a no-op. Unsupported names
// fail with ErrUnsupportedBackend before any construction work, and
// the previously active backend stays in place on every error path.
//
// Not safe for concurrent use with itself or with model evaluation.
func SetBackend(name string) error {
	factory, ok := factories[name]
	if !ok {
		return fmt.Errorf("%w: %q, valid choices are %s",
			ErrUnsupportedBackend, name, strings.Join(Supported, ", "))
	}
	if name == activeName {
		return nil
	}

	eng, special, err := factory()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrBackendBroken, name, err)
	}
	if !eng.Available() {
		return fmt.Errorf("%w: %s", ErrBackendUnavailable, name)
	}

	b, ok := eng.(Backend)
	if !ok {
		b = trapzShim{eng}
	}

	if activeBackend != nil {
		activeBackend.Cleanup()
	}
	activeBackend = b
	activeSpecial = special
	activeName = name
	logrus.WithField("backend", name).Debug("compute backend selected")
	return nil
}

// Active returns the process-wide active backend.
func Active() Backend { return activeBackend }

// ActiveSpecial returns the special-function implementation bound to
// the active backend.
func ActiveSpecial() Special { return activeSpecial }

// ActiveName returns the name of the active backend.
func ActiveName() string { return activeName }

// EnableCUDA selects the cuda backend.
//
// Deprecated: use SetBackend("cuda") instead.
func EnableCUDA() error {
	logrus.Warn(`EnableCUDA is deprecated, use SetBackend("cuda") instead`)
	return SetBackend("cuda")
}

// DisableCUDA selects the cpu backend.
//
// Deprecated: use SetBackend("cpu") instead.
func DisableCUDA() error {
	logrus.Warn(`DisableCUDA is deprecated, use SetBackend("cpu") instead`)
	return SetBackend("cpu")
}
