package tdmsgo

import (
	"testing"

	"github.com/nireeson/tdmsgo/tdstype"
	"github.com/stretchr/testify/require"
)

func TestEndToEndFileGroupChannelDataAndProperties(t *testing.T) {
	file := NewFile(WithFileDescription("integration test run"))
	group, err := file.AddGroup("Sensors", WithGroupDescription("rack 1"))
	require.NoError(t, err)

	channel, err := group.AddChannel("Temperature", tdstype.DoubleFloat, WithChannelUnit("C"))
	require.NoError(t, err)

	var out []byte

	declSize, err := Declaration(nil, file)
	require.NoError(t, err)
	declBuf := make([]byte, declSize)
	n, err := Declaration(declBuf, file)
	require.NoError(t, err)
	require.Equal(t, declSize, n)
	out = append(out, declBuf...)

	propSize, err := AddPropertyToChannel(nil, channel, "unit_string", tdstype.String, []byte("C"))
	require.NoError(t, err)
	propBuf := make([]byte, propSize)
	n, err = AddPropertyToChannel(propBuf, channel, "unit_string", tdstype.String, []byte("C"))
	require.NoError(t, err)
	require.Equal(t, propSize, n)
	out = append(out, propBuf...)

	values := make([]byte, 8*3)
	dataSize, err := WriteChannelData(nil, channel, values, 3)
	require.NoError(t, err)
	dataBuf := make([]byte, dataSize)
	n, err = WriteChannelData(dataBuf, channel, values, 3)
	require.NoError(t, err)
	require.Equal(t, dataSize, n)
	out = append(out, dataBuf...)

	require.Equal(t, declSize+propSize+dataSize, len(out))
	require.Equal(t, []byte{0x54, 0x44, 0x53, 0x6D}, out[0:4])
}

func TestSecondWrapper(t *testing.T) {
	s, err := Second(1904, 1, 1, 0, 0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(0), s)
}

func TestWriteGroupDataWrapper(t *testing.T) {
	file := NewFile()
	group, _ := file.AddGroup("G")
	group.AddChannel("c1", tdstype.U8)
	group.AddChannel("c2", tdstype.U8)

	data := []ChannelValues{
		{Values: []byte{1, 2}, Count: 2},
		{Count: 0},
	}

	size, err := WriteGroupData(nil, group, data)
	require.NoError(t, err)

	buf := make([]byte, size)
	n, err := WriteGroupData(buf, group, data)
	require.NoError(t, err)
	require.Equal(t, size, n)
}
