package fault

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchErrorUnwrap(t *testing.T) {
	cause := errors.New("timeout")
	err := FetchError{Stage: StageMetadata, Err: cause}
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "metadata fetch failed: timeout", err.Error())
}

func TestChannelSinkDropsWhenFull(t *testing.T) {
	sink := make(ChannelSink, 1)
	sink.Report(FetchError{Stage: StageMetadata, Err: errors.New("a")})
	sink.Report(FetchError{Stage: StageTicketFields, Err: errors.New("b")})

	require.Len(t, sink, 1)
	assert.Equal(t, StageMetadata, (<-sink).Stage)
}

func TestMultiSink(t *testing.T) {
	rec := &Recorder{}
	ch := make(ChannelSink, 4)
	sink := MultiSink{LogSink{Logger: zerolog.Nop()}, rec, ch, nil}

	sink.Report(FetchError{Stage: StageResize, Err: errors.New("gone")})

	require.Len(t, rec.Errors, 1)
	assert.Equal(t, StageResize, rec.Errors[0].Stage)
	assert.Len(t, ch, 1)
}
