package try_test

import (
	"errors"
	"testing"

	"github.com/pizza-net/pizza-frontend/pkg/utils/try"
)

type fataler struct {
	fatal [][]any
}

func (f *fataler) Fatal(args ...any) {
	f.fatal = append(f.fatal, args)
}

type helperfataler struct {
	fataler

	helper uint
}

func (hf *helperfataler) Helper() {
	hf.helper += 1
}

func TestTry(t *testing.T) {
	t.Run("when it does not have error,", func(t *testing.T) {
		expected := 42
		testee := try.To(expected, nil)

		t.Run("Get returns the value", func(t *testing.T) {
			actual, err := testee.Get()
			if err != nil {
				t.Errorf("unexpected error: %s", err)
			}
			if actual != expected {
				t.Errorf("unexpected result: (actual, expected) = (%d, %d)", actual, expected)
			}
		})

		t.Run("OrFatal returns the value without calling Fatal", func(t *testing.T) {
			fataler := &fataler{}
			actual := testee.OrFatal(fataler)

			if actual != expected {
				t.Errorf("unexpected result: (actual, expected) = (%d, %d)", actual, expected)
			}
			if len(fataler.fatal) != 0 {
				t.Errorf("Fatal is called, unexpectedly: %v", fataler.fatal)
			}
		})

		t.Run("OrDefault ignores the default", func(t *testing.T) {
			ret := testee.OrDefault(expected + 1)
			if ret != expected {
				t.Errorf("unmatch: (actual, expected) = (%d, %d)", ret, expected)
			}
		})
	})

	t.Run("when it has error,", func(t *testing.T) {
		expectedErr := errors.New("fake error")
		testee := try.To(42, expectedErr)

		t.Run("Get returns the error", func(t *testing.T) {
			_, err := testee.Get()
			if !errors.Is(err, expectedErr) {
				t.Errorf("unexpected error: %v", err)
			}
		})

		t.Run("OrFatal calls Fatal with the error", func(t *testing.T) {
			fataler := &fataler{}
			testee.OrFatal(fataler)
			if len(fataler.fatal) != 1 {
				t.Fatalf("Fatal is not called once: %v", fataler.fatal)
			}
		})

		t.Run("OrFatal calls Helper when the Fataler has one", func(t *testing.T) {
			fataler := &helperfataler{}
			testee.OrFatal(fataler)
			if fataler.helper == 0 {
				t.Error("Helper is not called")
			}
		})

		t.Run("OrDefault returns the default", func(t *testing.T) {
			ret := testee.OrDefault(100)
			if ret != 100 {
				t.Errorf("unmatch: (actual, expected) = (%d, 100)", ret)
			}
		})
	})
}
