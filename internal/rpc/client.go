package rpc

import (
	"context"
	"strconv"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/xtding233/upgradesim/internal/simulate"
	"github.com/xtding233/upgradesim/internal/upgrade"
)

// Client calls a remote Simulator.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Simulate runs req remotely and returns the histogram and raw response.
func (c *Client) Simulate(ctx context.Context, req simulate.Request, opts ...grpc.CallOption) (upgrade.Histogram, *structpb.Struct, error) {
	fields := map[string]any{
		"rarity":      req.Rarity,
		"trials":      req.Trials,
		"start_level": req.StartLevel,
	}
	if req.Seed != nil {
		fields["seed"] = strconv.FormatUint(*req.Seed, 10)
	}
	in, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, nil, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, SimulateMethod, in, out, opts...); err != nil {
		return nil, nil, err
	}

	hist := upgrade.Histogram{}
	for k, v := range out.GetFields()["histogram"].GetStructValue().GetFields() {
		level, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		hist[level] = int(v.GetNumberValue())
	}
	return hist, out, nil
}

// Table fetches the chance table.
func (c *Client) Table(ctx context.Context, opts ...grpc.CallOption) ([]upgrade.TableRow, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, TableMethod, &structpb.Struct{}, out, opts...); err != nil {
		return nil, err
	}
	var rows []upgrade.TableRow
	for _, v := range out.GetFields()["rarities"].GetListValue().GetValues() {
		f := v.GetStructValue().GetFields()
		row := upgrade.TableRow{Name: f["rarity"].GetStringValue()}
		row.Rarity, _ = upgrade.ParseRarity(row.Name)
		for _, c := range f["chances"].GetListValue().GetValues() {
			row.Chances = append(row.Chances, int(c.GetNumberValue()))
		}
		rows = append(rows, row)
	}
	return rows, nil
}
