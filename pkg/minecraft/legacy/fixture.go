package legacy

import (
	"context"
	"encoding/binary"
	"io"
	"net"

	"golang.org/x/text/encoding/unicode"

	"github.com/mcherald/mcherald/pkg/tcp/tcpserver"
)

func ServerFactory(handler func(ctx context.Context, conn *net.TCPConn)) (*tcpserver.Server, func()) {
	ready := make(chan struct{})
	server, _ := tcpserver.New(
		"localhost:0", // 0 - listen an any available port
		handler,
		tcpserver.WithReadySignal(func() {
			ready <- struct{}{}
		}),
	)
	go func() {
		server.Listen() // nolint: errcheck
	}()
	<-ready
	return server, func() {
		server.Stop() // nolint: errcheck
	}
}

// PrepareKickServer runs a server that answers a legacy ping
// with the given kick text, wire-encoded.
func PrepareKickServer(kick string) (*tcpserver.Server, func()) {
	return PrepareRawServer(EncodeKick(kick))
}

// PrepareRawServer runs a server that answers a legacy ping
// with a pre-encoded payload as is.
func PrepareRawServer(raw []byte) (*tcpserver.Server, func()) {
	return ServerFactory(func(_ context.Context, conn *net.TCPConn) {
		defer conn.Close()
		if !consumePing(conn) {
			return
		}
		conn.Write(raw) // nolint: errcheck
	})
}

// PrepareSilentServer runs a server that consumes the ping
// but never answers, holding the connection open.
func PrepareSilentServer() (*tcpserver.Server, func()) {
	return ServerFactory(func(ctx context.Context, conn *net.TCPConn) {
		defer conn.Close()
		if !consumePing(conn) {
			return
		}
		<-ctx.Done()
	})
}

// EncodeKick renders a kick packet: packet id, payload length
// in utf-16 code units, then the utf-16 encoded payload itself.
func EncodeKick(kick string) []byte {
	encoded, _ := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(kick))
	packet := make([]byte, 0, len(encoded)+3)
	packet = append(packet, kickPacket)
	packet = binary.BigEndian.AppendUint16(packet, uint16(len(encoded)/2)) // nolint: gosec
	return append(packet, encoded...)
}

func consumePing(conn *net.TCPConn) bool {
	req := make([]byte, 2)
	if _, err := io.ReadFull(conn, req); err != nil {
		return false
	}
	return req[0] == pingPacket
}
