package registry

import (
	"context"
	"fmt"
	"os"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"cloudsweep/internal/types"
)

type overlayFile struct {
	Resources []types.ResourceMeta `yaml:"resources"`
}

// LoadOverlay merges resource definitions from a YAML file into the
// registry. Overlay entries win over built-ins with the same key.
func (r *Registry) LoadOverlay(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("registry overlay file not found").
			WithCause(err)
	}
	var overlay overlayFile
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse registry overlay yaml").
			WithCause(err)
	}
	for _, meta := range overlay.Resources {
		assert.NotEmpty(ctx, meta.Service, "overlay resource service must be set")
		assert.NotEmpty(ctx, meta.Type, "overlay resource type must be set")
		if meta.EnumOp == "" || meta.ResultPath == "" || meta.ID == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("overlay resource %s:%s missing enum_op, result_path or id", meta.Service, meta.Type))
		}
		if meta.FilterName != "" && meta.FilterKind == types.FilterKindNone {
			meta.FilterKind = types.FilterKindScalar
		}
		r.entries[key(ProviderAWS, meta.Service, meta.Type)] = meta
		log.Ctx(ctx).Debug().
			Str("service", meta.Service).
			Str("type", meta.Type).
			Msg("registry overlay entry loaded")
	}
	return nil
}
