package slp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/mcherald/mcherald/pkg/binutils"
)

var (
	ErrResponseIncomplete = errors.New("status response is not complete")
	ErrResponseMalformed  = errors.New("status response contains invalid data")
	ErrResponseTooLarge   = errors.New("status response exceeds the size limit")
)

const (
	packetHandshake = 0x00
	packetStatus    = 0x00

	// The handshake advertises no particular client version.
	handshakeProtocol = -1
	// Next state requested by the handshake: 1 is status, 2 is login.
	handshakeStateStatus = 1

	// Status payloads carry the player sample and an inline favicon,
	// yet must never be anywhere near this large.
	maxResponseSize = 1 << 20
)

type Player struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type Response struct {
	Description   string
	VersionName   string
	Protocol      int
	PlayersOnline int
	MaxPlayers    int
	Sample        []Player
	Latency       time.Duration
}

var Blank Response

type statusPayload struct {
	Version struct {
		Name     string `json:"name"`
		Protocol int    `json:"protocol"`
	} `json:"version"`
	Players struct {
		Online int      `json:"online"`
		Max    int      `json:"max"`
		Sample []Player `json:"sample"`
	} `json:"players"`
	Description json.RawMessage `json:"description"`
}

// chatComponent is the subset of the chat object format
// that is relevant for flattening a description to plain text.
// A component may also be encoded as a bare string.
type chatComponent struct {
	Text  string          `json:"text"`
	Extra []chatComponent `json:"extra"`
}

func (c *chatComponent) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		c.Text = plain
		c.Extra = nil
		return nil
	}
	type component chatComponent
	var full component
	if err := json.Unmarshal(data, &full); err != nil {
		return err
	}
	*c = chatComponent(full)
	return nil
}

func (c chatComponent) flatten(sb *strings.Builder) {
	sb.WriteString(c.Text)
	for _, child := range c.Extra {
		child.flatten(sb)
	}
}

func Query(ctx context.Context, host string, port int, timeout time.Duration) (Response, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return Blank, err
	}

	closing := make(chan struct{})
	defer func() {
		close(closing)
		conn.Close() // nolint: errcheck
	}()

	go func() {
		select {
		case <-ctx.Done():
			conn.SetDeadline(time.Now()) // nolint: errcheck
		case <-closing:
		}
	}()

	request := handshakePacket(host, port)
	request = append(request, statusRequestPacket()...)
	if _, err := conn.Write(request); err != nil {
		return Blank, err
	}

	sent := time.Now()
	payload, err := readStatus(bufio.NewReader(conn))
	if err != nil {
		return Blank, err
	}
	latency := time.Since(sent)

	response := Response{
		Description:   flattenDescription(payload.Description),
		VersionName:   payload.Version.Name,
		Protocol:      payload.Version.Protocol,
		PlayersOnline: payload.Players.Online,
		MaxPlayers:    payload.Players.Max,
		Sample:        payload.Players.Sample,
		Latency:       latency,
	}
	return response, nil
}

func handshakePacket(host string, port int) []byte {
	body := make([]byte, 0, len(host)+16)
	body = binutils.AppendVarInt(body, packetHandshake)
	body = binutils.AppendVarInt(body, handshakeProtocol)
	body = binutils.AppendVarInt(body, int32(len(host))) // nolint: gosec
	body = append(body, host...)
	body = binary.BigEndian.AppendUint16(body, uint16(port)) // nolint: gosec
	body = binutils.AppendVarInt(body, handshakeStateStatus)
	return frame(body)
}

func statusRequestPacket() []byte {
	return frame(binutils.AppendVarInt(nil, packetStatus))
}

// frame prefixes a packet body with its varint-encoded length.
func frame(body []byte) []byte {
	packet := binutils.AppendVarInt(make([]byte, 0, len(body)+2), int32(len(body))) // nolint: gosec
	return append(packet, body...)
}

func readStatus(r *bufio.Reader) (statusPayload, error) {
	var payload statusPayload

	packet, err := readFrame(r)
	if err != nil {
		return payload, err
	}

	body := bytes.NewReader(packet)

	packetID, err := binutils.ReadVarInt(body)
	if err != nil {
		return payload, fmt.Errorf("%w: packet id is missing", ErrResponseMalformed)
	}
	if packetID != packetStatus {
		return payload, fmt.Errorf("%w: unexpected packet id %#x", ErrResponseMalformed, packetID)
	}

	jsonLen, err := binutils.ReadVarInt(body)
	if err != nil {
		return payload, fmt.Errorf("%w: status length is missing", ErrResponseMalformed)
	}
	if jsonLen <= 0 || int(jsonLen) > body.Len() {
		return payload, fmt.Errorf("%w: status length is out of bounds", ErrResponseMalformed)
	}

	document := make([]byte, jsonLen)
	if _, err := io.ReadFull(body, document); err != nil {
		return payload, fmt.Errorf("%w: status document is truncated", ErrResponseMalformed)
	}
	if err := json.Unmarshal(document, &payload); err != nil {
		return payload, fmt.Errorf("%w: invalid status json", ErrResponseMalformed)
	}

	return payload, nil
}

func readFrame(r *bufio.Reader) ([]byte, error) {
	frameLen, err := binutils.ReadVarInt(r)
	switch {
	case errors.Is(err, binutils.ErrVarIntIncomplete):
		return nil, fmt.Errorf("%w: frame length is missing", ErrResponseIncomplete)
	case errors.Is(err, binutils.ErrVarIntTooBig):
		return nil, fmt.Errorf("%w: frame length is malformed", ErrResponseMalformed)
	case err != nil:
		return nil, err
	}

	if frameLen <= 0 {
		return nil, fmt.Errorf("%w: frame length is not positive", ErrResponseMalformed)
	}
	if frameLen > maxResponseSize {
		return nil, ErrResponseTooLarge
	}

	packet := make([]byte, frameLen)
	if _, err := io.ReadFull(r, packet); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: frame is truncated", ErrResponseIncomplete)
		}
		return nil, err
	}

	return packet, nil
}

func flattenDescription(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var chat chatComponent
	if err := json.Unmarshal(raw, &chat); err != nil {
		return ""
	}
	var sb strings.Builder
	chat.flatten(&sb)
	return sb.String()
}
