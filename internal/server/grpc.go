package server

import (
	"net"

	"github.com/MKhiriev/inkspire/internal/config"
	myGRPC "github.com/MKhiriev/inkspire/internal/handler/grpc"
	"github.com/MKhiriev/inkspire/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer(grpc.UnaryInterceptor(handler.UnaryLogging))
	handler.Register(s)

	return &grpcServer{
		handler: handler,
		server:  s,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

// RunServer listens on the configured address, reports SERVING and blocks
// until the server stops.
func (g *grpcServer) RunServer() {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Err(err).Str("func", "grpcServer.RunServer").Str("address", g.address).Msg("gRPC listen failed")
		return
	}

	g.handler.SetServing()
	g.logger.Info().Str("address", g.address).Msg("gRPC server listening")

	if err = g.server.Serve(lis); err != nil {
		g.logger.Err(err).Str("func", "grpcServer.RunServer").Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.handler.SetNotServing()
	g.server.GracefulStop()
}
