package graphson

import (
	"github.com/tinkerkit/graphson/pkg/errors"
	"github.com/tinkerkit/graphson/pkg/graph"
)

// Graph element units. All decode-only except Traverser: this client never
// sends elements back to the server, it only receives them.
//
// Label defaults are part of the wire contract and must not drift: a vertex
// without a label gets "", an edge gets "vertex". Downstream equality logic
// depends on these exact values.
func registerElements(r *Registry) {
	r.RegisterDecoder("g:Vertex", decodeVertex)
	r.RegisterDecoder("g:Edge", decodeEdge)
	r.RegisterDecoder("g:VertexProperty", decodeVertexProperty)
	r.RegisterDecoder("g:Property", decodeProperty)
	r.RegisterDecoder("g:Path", decodePath)

	r.RegisterEncoder(&graph.Traverser{}, encodeTraverser)
	r.RegisterDecoder("g:Traverser", decodeTraverser)
}

func decodeVertex(payload any, m *Mapper) (any, error) {
	d, err := payloadMap(payload)
	if err != nil {
		return nil, err
	}
	raw, err := requireField(d, "id")
	if err != nil {
		return nil, err
	}
	id, err := m.Decode(raw)
	if err != nil {
		return nil, err
	}

	label, _ := d["label"].(string)
	return graph.NewVertex(id, label), nil
}

func decodeEdge(payload any, m *Mapper) (any, error) {
	d, err := payloadMap(payload)
	if err != nil {
		return nil, err
	}

	id, err := decodeField(d, "id", m)
	if err != nil {
		return nil, err
	}
	outV, err := decodeField(d, "outV", m)
	if err != nil {
		return nil, err
	}
	inV, err := decodeField(d, "inV", m)
	if err != nil {
		return nil, err
	}

	label := "vertex"
	if s, ok := d["label"].(string); ok {
		label = s
	}

	// Endpoints arrive as bare ids; the shells carry no label.
	return &graph.Edge{
		Element: graph.Element{ID: id, Label: label},
		OutV:    graph.NewVertex(outV, ""),
		InV:     graph.NewVertex(inV, ""),
	}, nil
}

func decodeVertexProperty(payload any, m *Mapper) (any, error) {
	d, err := payloadMap(payload)
	if err != nil {
		return nil, err
	}

	id, err := decodeField(d, "id", m)
	if err != nil {
		return nil, err
	}
	raw, err := requireField(d, "label")
	if err != nil {
		return nil, err
	}
	label, ok := raw.(string)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "vertex property label is %T, want string", raw)
	}
	value, err := decodeField(d, "value", m)
	if err != nil {
		return nil, err
	}

	return &graph.VertexProperty{
		Element: graph.Element{ID: id, Label: label},
		Value:   value,
	}, nil
}

func decodeProperty(payload any, m *Mapper) (any, error) {
	d, err := payloadMap(payload)
	if err != nil {
		return nil, err
	}

	raw, err := requireField(d, "key")
	if err != nil {
		return nil, err
	}
	key, ok := raw.(string)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "property key is %T, want string", raw)
	}
	value, err := decodeField(d, "value", m)
	if err != nil {
		return nil, err
	}

	return &graph.Property{Key: key, Value: value}, nil
}

func decodePath(payload any, m *Mapper) (any, error) {
	d, err := payloadMap(payload)
	if err != nil {
		return nil, err
	}

	rawLabels, err := requireField(d, "labels")
	if err != nil {
		return nil, err
	}
	labelSets, ok := rawLabels.([]any)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "path labels are %T, want array", rawLabels)
	}

	labels := make([][]string, len(labelSets))
	for i, rawSet := range labelSets {
		set, ok := rawSet.([]any)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "path label set %d is %T, want array", i, rawSet)
		}
		labels[i] = make([]string, len(set))
		for j, rawLabel := range set {
			s, ok := rawLabel.(string)
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidInput, "path label is %T, want string", rawLabel)
			}
			labels[i][j] = s
		}
	}

	rawObjects, err := requireField(d, "objects")
	if err != nil {
		return nil, err
	}
	objectList, ok := rawObjects.([]any)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "path objects are %T, want array", rawObjects)
	}
	objects := make([]any, len(objectList))
	for i, rawObj := range objectList {
		obj, err := m.Decode(rawObj)
		if err != nil {
			return nil, err
		}
		objects[i] = obj
	}

	// labels[i] pairs with objects[i]; a length mismatch means the payload
	// lost the pairing somewhere upstream.
	if len(labels) != len(objects) {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"path has %d label sets but %d objects", len(labels), len(objects))
	}

	return &graph.Path{Labels: labels, Objects: objects}, nil
}

func encodeTraverser(v any, m *Mapper) (any, error) {
	t := v.(*graph.Traverser)

	value, err := m.Encode(t.Value)
	if err != nil {
		return nil, err
	}
	bulk, err := m.Encode(t.Bulk)
	if err != nil {
		return nil, err
	}

	return m.TypedValue("Traverser", map[string]any{
		"value": value,
		"bulk":  bulk,
	}), nil
}

func decodeTraverser(payload any, m *Mapper) (any, error) {
	d, err := payloadMap(payload)
	if err != nil {
		return nil, err
	}

	value, err := decodeField(d, "value", m)
	if err != nil {
		return nil, err
	}
	rawBulk, err := decodeField(d, "bulk", m)
	if err != nil {
		return nil, err
	}
	bulk, err := toInt64(rawBulk)
	if err != nil {
		return nil, err
	}

	return &graph.Traverser{Value: value, Bulk: bulk}, nil
}

// decodeField fetches a required field and recursively decodes it.
func decodeField(d map[string]any, key string, m *Mapper) (any, error) {
	raw, err := requireField(d, key)
	if err != nil {
		return nil, err
	}
	return m.Decode(raw)
}
