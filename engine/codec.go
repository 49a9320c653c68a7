package engine

import (
	"fmt"

	"github.com/goccy/go-yaml"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"bean-mapper/internal/common"
)

// codecEngine populates the target by encoding the source and decoding the
// result into the target.
type codecEngine struct {
	provider  Provider
	marshal   func(any) ([]byte, error)
	unmarshal func([]byte, any) error
	log       *zap.Logger
}

func newJSONEngine(log *zap.Logger) Engine {
	api := jsoniter.ConfigCompatibleWithStandardLibrary

	return &codecEngine{provider: ProviderJSON, marshal: api.Marshal, unmarshal: api.Unmarshal, log: log}
}

func newYAMLEngine(log *zap.Logger) Engine {
	return &codecEngine{
		provider:  ProviderYAML,
		marshal:   func(v any) ([]byte, error) { return yaml.Marshal(v) },
		unmarshal: func(data []byte, v any) error { return yaml.Unmarshal(data, v) },
		log:       log,
	}
}

func (e *codecEngine) Provider() Provider {
	return e.provider
}

func (e *codecEngine) Populate(dst, src any) error {
	if _, err := target(dst); err != nil {
		return err
	}

	if common.IsNil(src) {
		return nil
	}

	data, err := e.marshal(src)
	if err != nil {
		return fmt.Errorf("%v engine failed to encode %T: %w", e.provider, src, err)
	}

	if err := e.unmarshal(data, dst); err != nil {
		return fmt.Errorf("%v engine failed to decode into %T: %w", e.provider, dst, err)
	}

	e.log.Debug("populated target", zap.String("source", fmt.Sprintf("%T", src)), zap.String("target", fmt.Sprintf("%T", dst)))

	return nil
}
