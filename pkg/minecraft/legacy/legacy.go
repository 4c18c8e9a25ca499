package legacy

import (
	"bufio"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"
)

var (
	ErrResponseIncomplete = errors.New("kick response is not complete")
	ErrResponseMalformed  = errors.New("kick response contains invalid data")
)

const (
	pingPacket = 0xfe
	pingMagic  = 0x01
	kickPacket = 0xff

	// Kick payloads of the post-1.4 servers open with this marker,
	// followed by null-separated fields.
	richPrefix = "§1"
)

type Response struct {
	MOTD          string
	VersionName   string
	Protocol      int
	PlayersOnline int
	MaxPlayers    int
	Latency       time.Duration
}

var Blank Response

// Ping probes a server with the pre-netty ping packet, parsing the kick
// response it is answered with. Both the null-separated post-1.4 payload
// format and the older beta format are understood.
func Ping(ctx context.Context, host string, port int, timeout time.Duration) (Response, error) {
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

	if _, err := conn.Write([]byte{pingPacket, pingMagic}); err != nil {
		return Blank, err
	}

	sent := time.Now()
	text, err := readKick(bufio.NewReader(conn))
	if err != nil {
		return Blank, err
	}
	latency := time.Since(sent)

	response, err := parseKick(text)
	if err != nil {
		return Blank, err
	}
	response.Latency = latency

	return response, nil
}

func readKick(r *bufio.Reader) (string, error) {
	packetID, err := r.ReadByte()
	switch {
	case errors.Is(err, io.EOF):
		return "", fmt.Errorf("%w: no kick packet", ErrResponseIncomplete)
	case err != nil:
		return "", err
	}
	if packetID != kickPacket {
		return "", fmt.Errorf("%w: unexpected packet id %#x", ErrResponseMalformed, packetID)
	}

	var lenBuf [2]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return "", fmt.Errorf("%w: kick length is missing", ErrResponseIncomplete)
		}
		return "", err
	}

	// the length counts utf-16 code units, not bytes
	length := binary.BigEndian.Uint16(lenBuf[:])
	if length == 0 {
		return "", fmt.Errorf("%w: kick payload is empty", ErrResponseMalformed)
	}

	payload := make([]byte, int(length)*2)
	if _, err := io.ReadFull(r, payload); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return "", fmt.Errorf("%w: kick payload is truncated", ErrResponseIncomplete)
		}
		return "", err
	}

	decoded, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(payload)
	if err != nil {
		return "", fmt.Errorf("%w: kick payload is not valid utf-16", ErrResponseMalformed)
	}

	return string(decoded), nil
}

func parseKick(text string) (Response, error) {
	fields := strings.Split(text, "\x00")
	if fields[0] == richPrefix {
		return parseRichKick(fields)
	}
	return parseClassicKick(text)
}

// parseRichKick handles the post-1.4 payload:
// §1, protocol version, server version, motd, online players, max players.
func parseRichKick(fields []string) (Response, error) {
	if len(fields) < 6 {
		return Blank, fmt.Errorf("%w: not enough kick fields", ErrResponseMalformed)
	}
	protocol, err := strconv.Atoi(fields[1])
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
		MOTD:          fields[3],
		VersionName:   fields[2],
		Protocol:      protocol,
		PlayersOnline: online,
		MaxPlayers:    maxPlayers,
	}
	return response, nil
}

// parseClassicKick handles the beta payload: motd, online players and
// max players separated by the section sign.
func parseClassicKick(text string) (Response, error) {
	fields := strings.Split(text, "§")
	if len(fields) < 3 {
		return Blank, fmt.Errorf("%w: not enough kick fields", ErrResponseMalformed)
	}
	online, err := strconv.Atoi(fields[len(fields)-2])
	if err != nil {
		return Blank, fmt.Errorf("%w: online players count is not a number", ErrResponseMalformed)
	}
	maxPlayers, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return Blank, fmt.Errorf("%w: max players count is not a number", ErrResponseMalformed)
	}
	response := Response{
		MOTD:          strings.Join(fields[:len(fields)-2], "§"),
		PlayersOnline: online,
		MaxPlayers:    maxPlayers,
	}
	return response, nil
}
