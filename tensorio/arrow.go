package tensorio

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/23skdu/longbow-loom/tensor"
)

// ErrArrowSchema indicates the stream's first column is not float64.
var ErrArrowSchema = errors.New("tensorio: first arrow column is not float64")

const varianceMetadataKey = "loom.variance"

// WriteArrowIPC writes a rank-1 covariant float64 tensor as an Arrow IPC
// stream at path: one float64 column named after the index, one row per
// component. The acceptance rule matches WriteCSV: unsupported shapes
// write nothing and report zero record batches.
func WriteArrowIPC(ctx context.Context, t tensor.Tensor[float64], path string) (int, error) {
	_, span := tracer.Start(ctx, "WriteArrowIPC")
	defer span.End()
	span.SetAttributes(attribute.String("path", path))

	comps, idx, ok := functionalComponents(t)
	if !ok {
		log.Debug().Str("path", path).Msg("WriteArrowIPC: unsupported shape, nothing written")
		return 0, nil
	}

	mem := memory.NewGoAllocator()
	md := arrow.NewMetadata([]string{varianceMetadataKey}, []string{idx.Variance.String()})
	schema := arrow.NewSchema(
		[]arrow.Field{{Name: string(idx.Name), Type: arrow.PrimitiveTypes.Float64}},
		&md,
	)

	b := array.NewFloat64Builder(mem)
	defer b.Release()
	b.AppendValues(comps, nil)
	col := b.NewArray()
	defer col.Release()

	rec := array.NewRecord(schema, []arrow.Array{col}, int64(len(comps)))
	defer rec.Release()

	f, err := os.Create(path)
	if err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("tensorio: create %s: %w", path, err)
	}
	defer f.Close()

	w := ipc.NewWriter(f, ipc.WithSchema(schema), ipc.WithAllocator(mem))
	if err := w.Write(rec); err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("tensorio: write record batch: %w", err)
	}
	if err := w.Close(); err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("tensorio: close arrow stream: %w", err)
	}

	arrowRecordsWritten.Inc()
	log.Debug().Str("path", path).Int("rows", len(comps)).
		Str("index", string(idx.Name)).Msg("WriteArrowIPC: wrote record batch")
	return 1, nil
}

// ReadArrowIPC reads the first record batch of the Arrow IPC stream at
// path and rebuilds a rank-1 covariant tensor from its first column.
// Later record batches are ignored. Name arity is checked before any
// filesystem access, as in ReadCSV.
func ReadArrowIPC(ctx context.Context, name string, path string) (tensor.Tensor[float64], error) {
	if _, ok := tensor.SingleIndexName(name); !ok {
		return tensor.Err[float64](tensor.MsgSingleIndexName), nil
	}

	_, span := tracer.Start(ctx, "ReadArrowIPC")
	defer span.End()
	span.SetAttributes(attribute.String("path", path))

	f, err := os.Open(path)
	if err != nil {
		span.RecordError(err)
		return tensor.Tensor[float64]{}, fmt.Errorf("tensorio: open %s: %w", path, err)
	}
	defer f.Close()

	rdr, err := ipc.NewReader(f, ipc.WithAllocator(memory.NewGoAllocator()))
	if err != nil {
		span.RecordError(err)
		return tensor.Tensor[float64]{}, fmt.Errorf("tensorio: open arrow stream %s: %w", path, err)
	}
	defer rdr.Release()

	if !rdr.Next() {
		if err := rdr.Err(); err != nil {
			span.RecordError(err)
			return tensor.Tensor[float64]{}, fmt.Errorf("tensorio: read record batch: %w", err)
		}
		span.RecordError(ErrNoDecodableFields)
		return tensor.Tensor[float64]{}, fmt.Errorf("%w: %s has no record batches", ErrNoDecodableFields, path)
	}
	rec := rdr.Record()

	col, ok := rec.Column(0).(*array.Float64)
	if !ok {
		span.RecordError(ErrArrowSchema)
		return tensor.Tensor[float64]{}, fmt.Errorf("%w: %s", ErrArrowSchema, path)
	}

	// The record is only valid until the next iteration; copy out.
	values := make([]float64, col.Len())
	copy(values, col.Float64Values())
	if len(values) == 0 {
		span.RecordError(ErrNoDecodableFields)
		return tensor.Tensor[float64]{}, fmt.Errorf("%w: %s", ErrNoDecodableFields, path)
	}

	t := tensor.FromIndices(name, []int{len(values)}, tensor.Covariant, func(coords []int) float64 {
		return values[coords[0]]
	})
	log.Debug().Str("path", path).Int("rows", len(values)).Msg("ReadArrowIPC: rebuilt tensor")
	return t, nil
}
