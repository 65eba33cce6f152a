package messages

import (
	"errors"
	"fmt"

	"github.com/cbodonnell/saltclient/flatbuffers/envelope"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/klauspost/compress/zstd"
)

var ErrMessageTooLarge = errors.New("message too large")

var (
	encoder *zstd.Encoder
	decoder *zstd.Decoder
)

func init() {
	var err error
	encoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		panic(fmt.Sprintf("failed to create zstd encoder: %v", err))
	}
	decoder, err = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(MaxMessageSize))
	if err != nil {
		panic(fmt.Sprintf("failed to create zstd decoder: %v", err))
	}
}

// SerializeMessage produces one wire frame: a zstd compressed Envelope flatbuffer.
func SerializeMessage(m *Message) ([]byte, error) {
	b, err := SerializeMessageFlatbuffer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize message: %w", err)
	}

	compressed := encoder.EncodeAll(b, make([]byte, 0, len(b)))
	if len(compressed) > MaxMessageSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, len(compressed))
	}

	return compressed, nil
}

// DeserializeMessage is the inverse of SerializeMessage.
func DeserializeMessage(data []byte) (*Message, error) {
	if len(data) > MaxMessageSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, len(data))
	}

	b, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress message: %w", err)
	}

	message, err := DeserializeMessageFlatbuffer(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize message: %w", err)
	}

	return message, nil
}

func SerializeMessageFlatbuffer(m *Message) ([]byte, error) {
	if len(m.Payload) > MaxMessageSize {
		return nil, fmt.Errorf("%w: payload of %d bytes", ErrMessageTooLarge, len(m.Payload))
	}

	builder := flatbuffers.NewBuilder(len(m.Payload) + 32)

	var payload flatbuffers.UOffsetT
	if len(m.Payload) > 0 {
		payload = builder.CreateByteVector(m.Payload)
	}

	envelope.EnvelopeStart(builder)
	envelope.EnvelopeAddSeq(builder, m.Seq)
	envelope.EnvelopeAddType(builder, byte(m.Type))
	if len(m.Payload) > 0 {
		envelope.EnvelopeAddPayload(builder, payload)
	}
	envelopeOffset := envelope.EnvelopeEnd(builder)
	builder.Finish(envelopeOffset)

	return builder.FinishedBytes(), nil
}

// DeserializeMessageFlatbuffer reads an Envelope. The flatbuffers runtime panics on
// out of range offsets, so a malformed buffer is recovered into an error.
func DeserializeMessageFlatbuffer(b []byte) (message *Message, err error) {
	if len(b) < flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("envelope too short: %d bytes", len(b))
	}

	defer func() {
		if r := recover(); r != nil {
			message = nil
			err = fmt.Errorf("malformed envelope: %v", r)
		}
	}()

	fb := envelope.GetRootAsEnvelope(b, 0)
	message = &Message{
		Seq:  fb.Seq(),
		Type: MessageType(fb.Type()),
	}
	if payload := fb.PayloadBytes(); len(payload) > 0 {
		message.Payload = append([]byte(nil), payload...)
	}

	return message, nil
}
