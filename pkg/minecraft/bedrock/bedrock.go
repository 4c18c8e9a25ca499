package bedrock

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/mcherald/mcherald/pkg/random"
)

var (
	ErrResponseIncomplete = errors.New("pong response is not complete")
	ErrResponseMalformed  = errors.New("pong response contains invalid data")
)

const (
	packetUnconnectedPing = 0x01
	packetUnconnectedPong = 0x1c

	// id, timestamp, magic, client guid
	pingSize = 1 + 8 + 16 + 8
	// id, timestamp, server guid, magic, payload length
	pongHeaderSize = 1 + 8 + 8 + 16 + 2

	bufferSize = 1472
)

// The offline message marker every unconnected packet carries.
var unconnectedMagic = []byte{
	0x00, 0xff, 0xff, 0x00, 0xfe, 0xfe, 0xfe, 0xfe,
	0xfd, 0xfd, 0xfd, 0xfd, 0x12, 0x34, 0x56, 0x78,
}

type Response struct {
	Edition       string
	MOTD          string
	Protocol      int
	VersionName   string
	PlayersOnline int
	MaxPlayers    int
	ServerID      string
	LevelName     string
	GameMode      string
	Latency       time.Duration
}

var Blank Response

// Query sends a raknet unconnected ping and parses the pong it is answered
// with. The pong payload is a semicolon-separated list of fields, opening
// with an edition marker.
func Query(ctx context.Context, host string, port int, timeout time.Duration) (Response, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "udp", net.JoinHostPort(host, strconv.Itoa(port)))
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

	if _, err := conn.Write(pingPacket()); err != nil {
		return Blank, err
	}

	sent := time.Now()
	buffer := make([]byte, bufferSize)
	n, err := conn.Read(buffer)
	if err != nil {
		return Blank, err
	}
	latency := time.Since(sent)

	response, err := parsePong(buffer[:n])
	if err != nil {
		return Blank, err
	}
	response.Latency = latency

	return response, nil
}

func pingPacket() []byte {
	packet := make([]byte, 0, pingSize)
	packet = append(packet, packetUnconnectedPing)
	packet = binary.BigEndian.AppendUint64(packet, uint64(time.Now().UnixMilli())) // nolint: gosec
	packet = append(packet, unconnectedMagic...)
	packet = binary.BigEndian.AppendUint64(packet, uint64(random.RandInt64())) // nolint: gosec
	return packet
}

func parsePong(packet []byte) (Response, error) {
	if len(packet) == 0 {
		return Blank, fmt.Errorf("%w: empty datagram", ErrResponseIncomplete)
	}
	if packet[0] != packetUnconnectedPong {
		return Blank, fmt.Errorf("%w: unexpected packet id %#x", ErrResponseMalformed, packet[0])
	}
	if len(packet) < pongHeaderSize {
		return Blank, fmt.Errorf("%w: pong header is truncated", ErrResponseIncomplete)
	}
	if !bytes.Equal(packet[17:33], unconnectedMagic) {
		return Blank, fmt.Errorf("%w: magic mismatch", ErrResponseMalformed)
	}

	serverGUID := binary.BigEndian.Uint64(packet[9:17])

	payloadLen := int(binary.BigEndian.Uint16(packet[33:35]))
	payload := packet[pongHeaderSize:]
	if payloadLen > len(payload) {
		return Blank, fmt.Errorf("%w: pong payload is truncated", ErrResponseIncomplete)
	}

	return parsePayload(string(payload[:payloadLen]), serverGUID)
}

func parsePayload(payload string, serverGUID uint64) (Response, error) {
	fields := strings.Split(payload, ";")
	if len(fields) < 6 {
		return Blank, fmt.Errorf("%w: not enough payload fields", ErrResponseMalformed)
	}
	if fields[0] != "MCPE" && fields[0] != "MCEE" {
		return Blank, fmt.Errorf("%w: unexpected edition marker %q", ErrResponseMalformed, fields[0])
	}
	protocol, err := strconv.Atoi(fields[2])
	if err != nil {
		return Blank, fmt.Errorf("%w: protocol version is not a number", ErrResponseMalformed)
	}
	online, err := strconv.Atoi(fields[4])
	if err != nil {
		return Blank, fmt.Errorf("%w: online players count is not a number", ErrResponseMalformed)
	}
	maxPlayers, err := strconv.Atoi(fields[5])
	if err != nil {
		return Blank, fmt.Errorf("%w: max players count is not a number", ErrResponseMalformed)
	}

	response := Response{
		Edition:       fields[0],
		MOTD:          fields[1],
		Protocol:      protocol,
		VersionName:   fields[3],
		PlayersOnline: online,
		MaxPlayers:    maxPlayers,
		ServerID:      strconv.FormatUint(serverGUID, 10),
	}
	if len(fields) > 6 && fields[6] != "" {
		response.ServerID = fields[6]
	}
	if len(fields) > 7 {
		response.LevelName = fields[7]
	}
	if len(fields) > 8 {
		response.GameMode = fields[8]
	}

	return response, nil
}
