package tensorio

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/23skdu/longbow-loom/internal/fieldcodec"
	"github.com/23skdu/longbow-loom/tensor"
)

var tracer = otel.Tracer("longbow-loom/tensorio")

// ErrNoDecodableFields indicates the first row contained no field that
// decoded into the requested element type.
var ErrNoDecodableFields = errors.New("tensorio: no decodable fields in first row")

// functionalComponents flattens a rank-1 covariant tensor into its
// ordered components. ok is false for any other shape, including Err.
func functionalComponents[T any](t tensor.Tensor[T]) ([]T, tensor.Index, bool) {
	idx, isFinite := t.Index()
	if !isFinite || idx.Variance != tensor.Covariant {
		return nil, tensor.Index{}, false
	}
	comps := make([]T, idx.Size)
	for i := range comps {
		child, err := t.Child(i)
		if err != nil {
			return nil, tensor.Index{}, false
		}
		v, isScalar := child.Value()
		if !isScalar {
			return nil, tensor.Index{}, false
		}
		comps[i] = v
	}
	return comps, idx, true
}

// WriteCSV writes a rank-1 covariant tensor as one CSV row at path, one
// injectively encoded field per component, joined with sep and quoted
// with doubled double-quotes where needed. It returns the number of rows
// written: 1 on success, 0 for any unsupported shape (which is a no-op,
// not an error).
func WriteCSV[T any](ctx context.Context, t tensor.Tensor[T], path string, sep rune) (int, error) {
	_, span := tracer.Start(ctx, "WriteCSV")
	defer span.End()
	span.SetAttributes(attribute.String("path", path))

	comps, idx, ok := functionalComponents(t)
	if !ok {
		log.Debug().Str("path", path).Msg("WriteCSV: unsupported shape, nothing written")
		return 0, nil
	}

	fields := make([]string, len(comps))
	for i, v := range comps {
		field, err := fieldcodec.Encode(v)
		if err != nil {
			span.RecordError(err)
			return 0, fmt.Errorf("tensorio: encode field %d: %w", i, err)
		}
		fields[i] = field
	}

	f, err := os.Create(path)
	if err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("tensorio: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = sep
	if err := w.Write(fields); err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("tensorio: write row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("tensorio: flush row: %w", err)
	}

	csvRowsWritten.Inc()
	log.Debug().Str("path", path).Int("fields", len(fields)).
		Str("index", string(idx.Name)).Msg("WriteCSV: wrote row")
	return 1, nil
}

// ReadCSV reads the first row of the CSV file at path and rebuilds a
// rank-1 covariant tensor named by the single-character index name.
// Fields that fail to decode into T are discarded; the tensor is sized to
// the decode successes. Rows after the first are ignored.
//
// A name that is not exactly one character yields the usual construction
// failure without touching the filesystem. A missing or unreadable file,
// a malformed row, or a row with zero decodable fields is an error.
func ReadCSV[T any](ctx context.Context, name string, path string, sep rune) (tensor.Tensor[T], error) {
	if _, ok := tensor.SingleIndexName(name); !ok {
		return tensor.Err[T](tensor.MsgSingleIndexName), nil
	}

	_, span := tracer.Start(ctx, "ReadCSV")
	defer span.End()
	span.SetAttributes(attribute.String("path", path))

	f, err := os.Open(path)
	if err != nil {
		span.RecordError(err)
		return tensor.Tensor[T]{}, fmt.Errorf("tensorio: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = sep
	r.FieldsPerRecord = -1

	row, err := r.Read()
	if err == io.EOF {
		span.RecordError(ErrNoDecodableFields)
		return tensor.Tensor[T]{}, fmt.Errorf("%w: %s is empty", ErrNoDecodableFields, path)
	}
	if err != nil {
		span.RecordError(err)
		return tensor.Tensor[T]{}, fmt.Errorf("tensorio: read first row of %s: %w", path, err)
	}

	values := make([]T, 0, len(row))
	for i, field := range row {
		v, err := fieldcodec.Decode[T](field)
		if err != nil {
			csvFieldsDiscarded.Inc()
			log.Warn().Str("path", path).Int("field", i).Err(err).
				Msg("ReadCSV: discarding undecodable field")
			continue
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		span.RecordError(ErrNoDecodableFields)
		return tensor.Tensor[T]{}, fmt.Errorf("%w: %s", ErrNoDecodableFields, path)
	}

	t := tensor.FromIndices(name, []int{len(values)}, tensor.Covariant, func(coords []int) T {
		return values[coords[0]]
	})
	log.Debug().Str("path", path).Int("fields", len(row)).Int("decoded", len(values)).
		Msg("ReadCSV: rebuilt tensor")
	return t, nil
}
