package rpc

import (
	"context"
	"errors"
	"math"
	"strconv"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/xtding233/upgradesim/internal/simulate"
	"github.com/xtding233/upgradesim/internal/upgrade"
)

const (
	ServiceName    = "upgradesim.v1.Simulator"
	SimulateMethod = "/" + ServiceName + "/Simulate"
	TableMethod    = "/" + ServiceName + "/Table"
)

// SimulatorServer is the gRPC surface of the simulator.
// Messages are google.protobuf.Struct:
//
//	Simulate request:  {rarity: string, trials: number, start_level?: number, seed?: string}
//	Simulate response: {run_id, rarity, trials, start_level, seed, attempts, final_level, terminal, histogram: {"<level>": count}}
//	Table response:    {rarities: [{rarity, chances: [number x10]}]}
type SimulatorServer interface {
	Simulate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Table(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

var simulatorServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SimulatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Simulate", Handler: unaryHandler(SimulateMethod, SimulatorServer.Simulate)},
		{MethodName: "Table", Handler: unaryHandler(TableMethod, SimulatorServer.Table)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "upgradesim/v1/simulator.proto",
}

func unaryHandler(fullMethod string, call func(SimulatorServer, context.Context, *structpb.Struct) (*structpb.Struct, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(SimulatorServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(SimulatorServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Register attaches the simulator to a gRPC server.
func Register(s grpc.ServiceRegistrar, srv SimulatorServer) {
	s.RegisterService(&simulatorServiceDesc, srv)
}

// Server implements SimulatorServer on top of simulate.Service.
type Server struct {
	svc *simulate.Service
	log zerolog.Logger
}

func NewServer(svc *simulate.Service, log zerolog.Logger) *Server {
	return &Server{svc: svc, log: log}
}

func (s *Server) Simulate(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := requestFromStruct(in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	res, err := s.svc.Simulate(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, simulate.ErrUnknownRarity), errors.Is(err, simulate.ErrStartLevel),
			errors.Is(err, simulate.ErrTooManyTrials):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return nil, status.FromContextError(err).Err()
		default:
			s.log.Error().Err(err).Msg("simulate")
			return nil, status.Error(codes.Internal, err.Error())
		}
	}
	return resultToStruct(res)
}

func (s *Server) Table(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	rows := upgrade.Table()
	rarities := make([]any, 0, len(rows))
	for _, row := range rows {
		chances := make([]any, len(row.Chances))
		for i, c := range row.Chances {
			chances[i] = c
		}
		rarities = append(rarities, map[string]any{"rarity": row.Name, "chances": chances})
	}
	return structpb.NewStruct(map[string]any{"rarities": rarities})
}

func requestFromStruct(in *structpb.Struct) (simulate.Request, error) {
	f := in.GetFields()
	req := simulate.Request{Rarity: f["rarity"].GetStringValue()}
	if req.Rarity == "" {
		return req, errors.New("missing field rarity")
	}
	trials, ok, err := intField(f, "trials")
	if err != nil {
		return req, err
	}
	if !ok {
		return req, errors.New("missing field trials")
	}
	req.Trials = trials
	if req.StartLevel, _, err = intField(f, "start_level"); err != nil {
		return req, err
	}
	if v, ok := f["seed"]; ok {
		seed, err := strconv.ParseUint(v.GetStringValue(), 10, 64)
		if err != nil {
			return req, errors.New("invalid field seed: want a decimal string")
		}
		req.Seed = &seed
	}
	return req, nil
}

func intField(f map[string]*structpb.Value, key string) (int, bool, error) {
	v, ok := f[key]
	if !ok {
		return 0, false, nil
	}
	n, isNum := v.GetKind().(*structpb.Value_NumberValue)
	if !isNum || n.NumberValue != math.Trunc(n.NumberValue) || math.Abs(n.NumberValue) > math.MaxInt32 {
		return 0, false, errors.New("invalid field " + key + ": want an integer")
	}
	return int(n.NumberValue), true, nil
}

func resultToStruct(res simulate.Result) (*structpb.Struct, error) {
	hist := make(map[string]any, len(res.Histogram))
	for level, count := range res.Histogram {
		hist[strconv.Itoa(level)] = count
	}
	return structpb.NewStruct(map[string]any{
		"run_id":      res.RunID,
		"rarity":      res.Rarity,
		"trials":      res.Trials,
		"start_level": res.StartLevel,
		"seed":        strconv.FormatUint(res.Seed, 10),
		"attempts":    res.Attempts,
		"final_level": res.FinalLevel,
		"terminal":    res.Terminal,
		"histogram":   hist,
	})
}
