package utils_test

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/repotab/repotab/internal/utils"
)

func TestFlushingWriterFlushesBufferedWriters(testInstance *testing.T) {
	var backingBuffer bytes.Buffer
	bufferedWriter := bufio.NewWriterSize(&backingBuffer, 1024)

	flushingWriter := utils.NewFlushingWriter(bufferedWriter)

	bytesWritten, writeError := flushingWriter.Write([]byte("status report"))
	require.NoError(testInstance, writeError)
	require.Equal(testInstance, len("status report"), bytesWritten)
	require.Equal(testInstance, "status report", backingBuffer.String())
}

func TestFlushingWriterPassesThroughWrappedInstances(testInstance *testing.T) {
	var backingBuffer bytes.Buffer

	firstWrapper := utils.NewFlushingWriter(&backingBuffer)
	secondWrapper := utils.NewFlushingWriter(firstWrapper)

	require.Same(testInstance, firstWrapper, secondWrapper)
	require.Nil(testInstance, utils.NewFlushingWriter(nil))
}
