package bedrock

import (
	"context"
	"encoding/binary"
	"net"

	"github.com/mcherald/mcherald/pkg/udp/udpserver"
)

func ServerFactory(handler udpserver.HandlerFunc) (*udpserver.Server, func()) {
	ready := make(chan struct{})
	server, _ := udpserver.New(
		"localhost:0", // 0 - listen an any available port
		handler,
		udpserver.WithReadySignal(func() {
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

// PreparePongServer runs a server that answers an unconnected ping
// with a pong carrying the given payload.
func PreparePongServer(guid uint64, payload string) (*udpserver.Server, func()) {
	return ServerFactory(
		func(_ context.Context, conn *net.UDPConn, addr *net.UDPAddr, req []byte) {
			if len(req) < pingSize || req[0] != packetUnconnectedPing {
				return
			}
			pingTime := binary.BigEndian.Uint64(req[1:9])
			conn.WriteToUDP(EncodePong(pingTime, guid, payload), addr) // nolint: errcheck
		},
	)
}

// PrepareRawServer runs a server that answers an unconnected ping
// with a pre-encoded datagram as is.
func PrepareRawServer(raw []byte) (*udpserver.Server, func()) {
	return ServerFactory(
		func(_ context.Context, conn *net.UDPConn, addr *net.UDPAddr, req []byte) {
			if len(req) == 0 || req[0] != packetUnconnectedPing {
				return
			}
			conn.WriteToUDP(raw, addr) // nolint: errcheck
		},
	)
}

// PrepareSilentServer runs a server that never answers.
func PrepareSilentServer() (*udpserver.Server, func()) {
	return ServerFactory(
		func(_ context.Context, _ *net.UDPConn, _ *net.UDPAddr, _ []byte) {},
	)
}

// EncodePong renders an unconnected pong datagram around the payload.
func EncodePong(pingTime uint64, guid uint64, payload string) []byte {
	packet := make([]byte, 0, pongHeaderSize+len(payload))
	packet = append(packet, packetUnconnectedPong)
	packet = binary.BigEndian.AppendUint64(packet, pingTime)
	packet = binary.BigEndian.AppendUint64(packet, guid)
	packet = append(packet, unconnectedMagic...)
	packet = binary.BigEndian.AppendUint16(packet, uint16(len(payload))) // nolint: gosec
	return append(packet, payload...)
}
