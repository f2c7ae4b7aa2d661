package input

import (
	"fmt"

	"treectl/internal/convert"
	"treectl/pkg/treetypes"
)

// Scan reads one argument per destination, in order, choosing the converter
// from the destination's type. It stops at the first failure.
func (in *Input) Scan(dsts ...any) error {
	for i, dst := range dsts {
		var err error
		switch d := dst.(type) {
		case *string:
			err = Read(in, convert.Text, d)
		case *int:
			err = Read(in, convert.Int, d)
		case *int32:
			err = Read(in, convert.Int32, d)
		case *int64:
			err = Read(in, convert.Int64, d)
		case *uint:
			err = Read(in, convert.Uint, d)
		case *uint64:
			err = Read(in, convert.Ulong, d)
		case *bool:
			err = Read(in, convert.Boolean, d)
		case *treetypes.Direction:
			err = Read(in, convert.Direction, d)
		default:
			return fmt.Errorf("scan destination %d: unsupported type %T", i, dst)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
