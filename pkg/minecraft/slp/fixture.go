package slp

import (
	"bufio"
	"context"
	"io"
	"net"

	"github.com/mcherald/mcherald/pkg/binutils"
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

// PrepareStatusServer runs a server that completes the status flow,
// answering a status request with the given json document.
func PrepareStatusServer(status []byte) (*tcpserver.Server, func()) {
	body := binutils.AppendVarInt(nil, packetStatus)
	body = binutils.AppendVarInt(body, int32(len(status))) // nolint: gosec
	body = append(body, status...)
	return PrepareRawServer(frame(body))
}

// PrepareRawServer runs a server that consumes the handshake and the status
// request, then answers with a pre-framed payload as is.
func PrepareRawServer(raw []byte) (*tcpserver.Server, func()) {
	return ServerFactory(func(_ context.Context, conn *net.TCPConn) {
		defer conn.Close()
		r := bufio.NewReader(conn)
		handshake, err := consumePacket(r)
		if err != nil || len(handshake) == 0 || handshake[0] != packetHandshake {
			return
		}
		if _, err := consumePacket(r); err != nil {
			return
		}
		conn.Write(raw) // nolint: errcheck
	})
}

// PrepareSilentServer runs a server that consumes the status flow
// but never answers, holding the connection open.
func PrepareSilentServer() (*tcpserver.Server, func()) {
	return ServerFactory(func(ctx context.Context, conn *net.TCPConn) {
		defer conn.Close()
		r := bufio.NewReader(conn)
		if _, err := consumePacket(r); err != nil {
			return
		}
		if _, err := consumePacket(r); err != nil {
			return
		}
		<-ctx.Done()
	})
}

func consumePacket(r *bufio.Reader) ([]byte, error) {
	length, err := binutils.ReadVarInt(r)
	if err != nil {
		return nil, err
	}
	packet := make([]byte, length)
	if _, err := io.ReadFull(r, packet); err != nil {
		return nil, err
	}
	return packet, nil
}
