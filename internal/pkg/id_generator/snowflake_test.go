package id_generator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembleDisassemble(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		fields Fields
	}{
		{
			name:   "全零",
			fields: Fields{},
		},
		{
			name: "各字段取最大值",
			fields: Fields{
				Timestamp:    timestampMask,
				DatacenterID: MaxDatacenterID,
				MachineID:    MaxMachineID,
				Recount:      MaxRecount,
				BusinessID:   MaxBusinessID,
				Sequence:     MaxSequence,
			},
		},
		{
			name: "普通值",
			fields: Fields{
				Timestamp:    123456789,
				DatacenterID: 1,
				MachineID:    2,
				Recount:      3,
				BusinessID:   4,
				Sequence:     5,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			id := Assemble(tc.fields)
			assert.Equal(t, tc.fields, Disassemble(id))
		})
	}
}

func TestAssemble_SignBitAlwaysZero(t *testing.T) {
	t.Parallel()
	id := Assemble(Fields{
		Timestamp:    math.MaxInt64,
		DatacenterID: MaxDatacenterID,
		MachineID:    MaxMachineID,
		Recount:      MaxRecount,
		BusinessID:   MaxBusinessID,
		Sequence:     MaxSequence,
	})
	assert.Equal(t, uint64(math.MaxInt64), id)
	assert.LessOrEqual(t, id, uint64(math.MaxInt64))
}

func TestAssemble_BitPositions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(1), Assemble(Fields{Sequence: 1}))
	assert.Equal(t, uint64(1)<<12, Assemble(Fields{BusinessID: 1}))
	assert.Equal(t, uint64(1)<<15, Assemble(Fields{Recount: 1}))
	assert.Equal(t, uint64(1)<<17, Assemble(Fields{MachineID: 1}))
	assert.Equal(t, uint64(1)<<20, Assemble(Fields{DatacenterID: 1}))
	assert.Equal(t, uint64(1)<<22, Assemble(Fields{Timestamp: 1}))
}

func TestMaskBusinessID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(3), MaskBusinessID(3))
	assert.Equal(t, int64(0), MaskBusinessID(8))
	assert.Equal(t, int64(7), MaskBusinessID(15))
}
