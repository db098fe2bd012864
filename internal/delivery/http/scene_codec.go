package http

import (
	"encoding/json"
	"fmt"

	"github.com/cafevirtuel/backend/internal/domain"
	"google.golang.org/protobuf/types/known/structpb"
)

// sceneToStruct converts a scene into a protobuf Struct with the same field
// names as its JSON form, for renderers that consume protobuf
func sceneToStruct(scene *domain.Scene) (*structpb.Struct, error) {
	raw, err := json.Marshal(scene)
	if err != nil {
		return nil, fmt.Errorf("encoding scene: %w", err)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("encoding scene: %w", err)
	}

	return structpb.NewStruct(fields)
}
