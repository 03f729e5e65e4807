package service

import "encoding/json"

// jsonCodec lets Connect carry the plain Go messages in messages.go.
// It replaces Connect's default "json" codec, which only handles protobuf messages.
type jsonCodec struct{}

func (jsonCodec) Name() string {
	return "json"
}

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	return json.Unmarshal(data, msg)
}
