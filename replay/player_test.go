package replay_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/arsenal/replay/capture"
	"github.com/vkngwrapper/arsenal/replay/replay"
	mock_replay "github.com/vkngwrapper/arsenal/replay/replay/mocks"
	"go.uber.org/mock/gomock"
	"golang.org/x/exp/slog"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bufferLogger(buffer *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buffer, nil))
}

func newTestPlayer(t *testing.T, target replay.Target) *replay.Player {
	return replay.NewPlayer(discardLogger(), target, replay.DefaultConfig())
}

func TestPlayerCreateDestroyPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := mock_replay.NewMockTarget(ctrl)
	pool := mock_replay.NewMockTargetPool(ctrl)

	target.EXPECT().CreatePool(replay.PoolParams{
		MemoryTypeIndex: 5,
		Flags:           0,
		BlockSize:       1048576,
		MinBlockCount:   1,
		MaxBlockCount:   4,
		FrameInUseCount: 0,
	}).Return(pool, nil)
	pool.EXPECT().Destroy().Return(nil)
	target.EXPECT().Destroy().Return(nil)

	player := newTestPlayer(t, target)
	player.ExecuteLine(3, "1,0.1,0,vmaCreatePool,5,0,1048576,1,4,0,0xAAAA")
	player.ExecuteLine(4, "1,0.2,0,vmaDestroyPool,0xAAAA")

	require.Zero(t, player.WarningCount())
	require.NoError(t, player.Close())
}

func TestPlayerDestroyedPoolHandleWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := mock_replay.NewMockTarget(ctrl)
	pool := mock_replay.NewMockTargetPool(ctrl)

	target.EXPECT().CreatePool(gomock.Any()).Return(pool, nil)
	pool.EXPECT().Destroy().Return(nil)
	target.EXPECT().Destroy().Return(nil)

	player := newTestPlayer(t, target)
	player.ExecuteLine(3, "1,0.1,0,vmaCreatePool,0,0,0,0,0,0,0xAAAA")
	player.ExecuteLine(4, "1,0.2,0,vmaDestroyPool,0xAAAA")
	player.ExecuteLine(5, "1,0.3,0,vmaDestroyPool,0xAAAA")

	require.Equal(t, uint64(1), player.WarningCount())
	require.NoError(t, player.Close())
}

func TestPlayerPoolFailedLiveButSucceededOriginally(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := mock_replay.NewMockTarget(ctrl)

	target.EXPECT().CreatePool(gomock.Any()).Return(nil, errors.New("no memory"))
	target.EXPECT().Destroy().Return(nil)

	player := newTestPlayer(t, target)
	player.ExecuteLine(3, "1,0.1,0,vmaCreatePool,0,0,0,0,0,0,0xAAAA")
	require.Equal(t, uint64(1), player.WarningCount())

	// The recorded handle still resolves, so destroying it is not an unknown
	// handle, and there is no live pool to destroy.
	player.ExecuteLine(4, "1,0.2,0,vmaDestroyPool,0xAAAA")
	require.Equal(t, uint64(1), player.WarningCount())
	require.NoError(t, player.Close())
}

func TestPlayerPoolSucceededLiveButFailedOriginally(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := mock_replay.NewMockTarget(ctrl)
	pool := mock_replay.NewMockTargetPool(ctrl)

	target.EXPECT().CreatePool(gomock.Any()).Return(pool, nil)
	// The unmatched pool is destroyed immediately rather than tracked.
	pool.EXPECT().Destroy().Return(nil)
	target.EXPECT().Destroy().Return(nil)

	player := newTestPlayer(t, target)
	player.ExecuteLine(3, "1,0.1,0,vmaCreatePool,0,0,0,0,0,0,0x0")

	require.Equal(t, uint64(1), player.WarningCount())
	require.NoError(t, player.Close())
}

func TestPlayerPoolFailedBothWays(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := mock_replay.NewMockTarget(ctrl)

	target.EXPECT().CreatePool(gomock.Any()).Return(nil, errors.New("no memory"))
	target.EXPECT().Destroy().Return(nil)

	player := newTestPlayer(t, target)
	player.ExecuteLine(3, "1,0.1,0,vmaCreatePool,0,0,0,0,0,0,0x0")

	require.Equal(t, uint64(1), player.WarningCount())
	require.NoError(t, player.Close())
}

func TestPlayerRecreateCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := mock_replay.NewMockTarget(ctrl)
	first := mock_replay.NewMockTargetPool(ctrl)
	second := mock_replay.NewMockTargetPool(ctrl)

	gomock.InOrder(
		target.EXPECT().CreatePool(gomock.Any()).Return(first, nil),
		target.EXPECT().CreatePool(gomock.Any()).Return(second, nil),
	)
	// Only the second pool is reachable through the handle table; the first
	// is abandoned, not destroyed.
	second.EXPECT().Destroy().Return(nil)
	target.EXPECT().Destroy().Return(nil)

	player := newTestPlayer(t, target)
	player.ExecuteLine(3, "1,0.1,0,vmaCreatePool,0,0,0,0,0,0,0xAAAA")
	player.ExecuteLine(4, "1,0.2,0,vmaCreatePool,0,0,0,0,0,0,0xAAAA")

	require.Equal(t, uint64(1), player.WarningCount())

	player.ExecuteLine(5, "1,0.3,0,vmaDestroyPool,0xAAAA")
	require.NoError(t, player.Close())
}

func TestPlayerCreateBufferWithUnknownPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := mock_replay.NewMockTarget(ctrl)
	alloc := mock_replay.NewMockTargetAllocation(ctrl)

	target.EXPECT().CreateBuffer(replay.BufferParams{
		Flags:       0,
		Size:        1024,
		Usage:       128,
		SharingMode: 0,
	}, gomock.Any()).DoAndReturn(
		func(buffer replay.BufferParams, params replay.AllocationParams) (replay.TargetAllocation, error) {
			// Unknown recorded pool falls back to the default pool.
			require.Nil(t, params.Pool)
			return alloc, nil
		})
	alloc.EXPECT().Free().Return(nil)
	target.EXPECT().Destroy().Return(nil)

	player := newTestPlayer(t, target)
	player.ExecuteLine(3, "1,0.1,0,vmaCreateBuffer,0,1024,128,0,0,1,0,0,0,0xDEAD,0xBEEF")

	require.Equal(t, uint64(1), player.WarningCount())

	player.ExecuteLine(4, "1,0.2,0,vmaDestroyBuffer,0xBEEF")
	require.NoError(t, player.Close())
}

func TestPlayerAllocationLeakFreedOnClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := mock_replay.NewMockTarget(ctrl)
	alloc := mock_replay.NewMockTargetAllocation(ctrl)

	target.EXPECT().CreateBuffer(gomock.Any(), gomock.Any()).Return(alloc, nil)
	alloc.EXPECT().Free().Return(nil)
	target.EXPECT().Destroy().Return(nil)

	var buffer bytes.Buffer
	player := replay.NewPlayer(bufferLogger(&buffer), target, replay.DefaultConfig())
	player.ExecuteLine(3, "1,0.1,0,vmaCreateBuffer,0,1024,128,0,0,1,0,0,0,0x0,0xBEEF")

	require.NoError(t, player.Close())
	require.Contains(t, buffer.String(), "allocations not freed by recording")
}

func TestPlayerAllocationFailedLiveButSucceededOriginally(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := mock_replay.NewMockTarget(ctrl)

	target.EXPECT().CreateBuffer(gomock.Any(), gomock.Any()).Return(nil, errors.New("no memory"))
	target.EXPECT().Destroy().Return(nil)

	player := newTestPlayer(t, target)
	player.ExecuteLine(3, "1,0.1,0,vmaCreateBuffer,0,1024,128,0,0,1,0,0,0,0x0,0xBEEF")
	require.Equal(t, uint64(1), player.WarningCount())

	// Later operations on the handle warn instead of crashing.
	player.ExecuteLine(4, "1,0.2,0,vmaMapMemory,0xBEEF")
	require.Equal(t, uint64(2), player.WarningCount())

	player.ExecuteLine(5, "1,0.3,0,vmaDestroyBuffer,0xBEEF")
	require.Equal(t, uint64(2), player.WarningCount())
	require.NoError(t, player.Close())
}

func TestPlayerAllocationSucceededLiveButFailedOriginally(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := mock_replay.NewMockTarget(ctrl)
	alloc := mock_replay.NewMockTargetAllocation(ctrl)

	target.EXPECT().CreateBuffer(gomock.Any(), gomock.Any()).Return(alloc, nil)
	alloc.EXPECT().Free().Return(nil)
	target.EXPECT().Destroy().Return(nil)

	player := newTestPlayer(t, target)
	player.ExecuteLine(3, "1,0.1,0,vmaCreateBuffer,0,1024,128,0,0,1,0,0,0,0x0,0x0")

	require.Equal(t, uint64(1), player.WarningCount())
	require.NoError(t, player.Close())
}

func TestPlayerMapUnmapFlushInvalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := mock_replay.NewMockTarget(ctrl)
	alloc := mock_replay.NewMockTargetAllocation(ctrl)

	target.EXPECT().CreateBuffer(gomock.Any(), gomock.Any()).Return(alloc, nil)
	gomock.InOrder(
		alloc.EXPECT().Map().Return(nil),
		alloc.EXPECT().Flush(uint64(256), uint64(512)).Return(nil),
		alloc.EXPECT().Invalidate(uint64(0), uint64(1024)).Return(nil),
		alloc.EXPECT().Unmap().Return(nil),
		alloc.EXPECT().Free().Return(nil),
	)
	target.EXPECT().Destroy().Return(nil)

	player := newTestPlayer(t, target)
	player.ExecuteLine(3, "1,0.1,0,vmaCreateBuffer,0,1024,128,0,0,1,0,0,0,0x0,0xBEEF")
	player.ExecuteLine(4, "1,0.2,0,vmaMapMemory,0xBEEF")
	player.ExecuteLine(5, "1,0.3,0,vmaFlushAllocation,0xBEEF,256,512")
	player.ExecuteLine(6, "1,0.4,0,vmaInvalidateAllocation,0xBEEF,0,1024")
	player.ExecuteLine(7, "1,0.5,0,vmaUnmapMemory,0xBEEF")
	player.ExecuteLine(8, "1,0.6,0,vmaFreeMemory,0xBEEF")

	require.Zero(t, player.WarningCount())
	require.NoError(t, player.Close())
}

func TestPlayerZeroHandleIsSilentNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := mock_replay.NewMockTarget(ctrl)
	target.EXPECT().Destroy().Return(nil)

	player := newTestPlayer(t, target)
	player.ExecuteLine(3, "1,0.1,0,vmaDestroyBuffer,0x0")
	player.ExecuteLine(4, "1,0.2,0,vmaDestroyPool,0x0")
	player.ExecuteLine(5, "1,0.3,0,vmaMapMemory,0x0")
	player.ExecuteLine(6, "1,0.4,0,vmaTouchAllocation,0x0")
	player.ExecuteLine(7, "1,0.5,0,vmaMakePoolAllocationsLost,0x0")

	require.Zero(t, player.WarningCount())
	require.NoError(t, player.Close())
}

func TestPlayerMalformedLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := mock_replay.NewMockTarget(ctrl)
	target.EXPECT().Destroy().Return(nil)

	player := newTestPlayer(t, target)

	// Too few columns.
	player.ExecuteLine(3, "1,0.1,0")
	require.Equal(t, uint64(1), player.WarningCount())

	// Unknown function.
	player.ExecuteLine(4, "1,0.2,0,vmaDefragment,0x1")
	require.Equal(t, uint64(2), player.WarningCount())

	// Wrong parameter count.
	player.ExecuteLine(5, "1,0.3,0,vmaMapMemory")
	require.Equal(t, uint64(3), player.WarningCount())

	// Unparseable parameter.
	player.ExecuteLine(6, "1,0.4,0,vmaMapMemory,zebra")
	require.Equal(t, uint64(4), player.WarningCount())

	require.NoError(t, player.Close())
}

func TestPlayerFrameIndexChangeForwardedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := mock_replay.NewMockTarget(ctrl)

	target.EXPECT().SetCurrentFrameIndex(uint32(7)).Times(1)
	target.EXPECT().Destroy().Return(nil)

	player := newTestPlayer(t, target)
	player.ExecuteLine(3, "1,0.1,0,vmaDestroyBuffer,0x0")
	player.ExecuteLine(4, "1,0.2,7,vmaDestroyBuffer,0x0")
	player.ExecuteLine(5, "1,0.3,7,vmaDestroyBuffer,0x0")

	require.Zero(t, player.WarningCount())
	require.NoError(t, player.Close())
}

func TestPlayerThreadStatistics(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := mock_replay.NewMockTarget(ctrl)
	target.EXPECT().Destroy().Return(nil)

	player := newTestPlayer(t, target)
	player.ExecuteLine(3, "1,0.1,0,vmaDestroyBuffer,0x0")
	player.ExecuteLine(4, "2,0.2,0,vmaDestroyBuffer,0x0")
	player.ExecuteLine(5, "2,0.3,0,vmaDestroyBuffer,0x0")
	player.ExecuteLine(6, "3,0.4,0,vmaDestroyBuffer,0x0")

	threads := player.ThreadStatistics()
	require.Equal(t, 3, threads.ThreadCount)
	require.Equal(t, uint64(4), threads.TotalCalls)
	require.Equal(t, uint64(2), threads.MaxThreadCalls)
	require.Equal(t, "0.4", player.LastRecordedTimestamp())
	require.NoError(t, player.Close())
}

func TestPlayerSetAllocationUserDataString(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := mock_replay.NewMockTarget(ctrl)
	alloc := mock_replay.NewMockTargetAllocation(ctrl)

	// Flags 0x20 marks user data as a copied string; the name includes
	// commas and must survive intact.
	target.EXPECT().CreateBuffer(gomock.Any(), gomock.Any()).DoAndReturn(
		func(buffer replay.BufferParams, params replay.AllocationParams) (replay.TargetAllocation, error) {
			require.Equal(t, "Mesh, level 1, pass 2", params.UserData)
			return alloc, nil
		})
	alloc.EXPECT().SetUserData("Renamed, again").Return(nil)
	alloc.EXPECT().Free().Return(nil)
	target.EXPECT().Destroy().Return(nil)

	player := newTestPlayer(t, target)
	player.ExecuteLine(3, "1,0.1,0,vmaCreateBuffer,0,1024,128,0,32,1,0,0,0,0x0,0xBEEF,Mesh, level 1, pass 2")
	player.ExecuteLine(4, "1,0.2,0,vmaSetAllocationUserData,0xBEEF,Renamed, again")
	player.ExecuteLine(5, "1,0.3,0,vmaDestroyBuffer,0xBEEF")

	require.Zero(t, player.WarningCount())
	require.NoError(t, player.Close())
}

func TestPlayerSetAllocationUserDataPointer(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := mock_replay.NewMockTarget(ctrl)
	alloc := mock_replay.NewMockTargetAllocation(ctrl)

	target.EXPECT().CreateBuffer(gomock.Any(), gomock.Any()).Return(alloc, nil)
	alloc.EXPECT().SetUserData(uint64(0x12345678)).Return(nil)
	alloc.EXPECT().Free().Return(nil)
	target.EXPECT().Destroy().Return(nil)

	player := newTestPlayer(t, target)
	player.ExecuteLine(3, "1,0.1,0,vmaCreateBuffer,0,1024,128,0,0,1,0,0,0,0x0,0xBEEF")
	player.ExecuteLine(4, "1,0.2,0,vmaSetAllocationUserData,0xBEEF,0x12345678")
	player.ExecuteLine(5, "1,0.3,0,vmaDestroyBuffer,0xBEEF")

	require.Zero(t, player.WarningCount())
	require.NoError(t, player.Close())
}

func TestPlayerUserDataDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := mock_replay.NewMockTarget(ctrl)
	alloc := mock_replay.NewMockTargetAllocation(ctrl)

	target.EXPECT().CreateBuffer(gomock.Any(), gomock.Any()).DoAndReturn(
		func(buffer replay.BufferParams, params replay.AllocationParams) (replay.TargetAllocation, error) {
			require.Nil(t, params.UserData)
			return alloc, nil
		})
	alloc.EXPECT().Free().Return(nil)
	target.EXPECT().Destroy().Return(nil)

	config := replay.DefaultConfig()
	config.UserDataEnabled = false
	player := replay.NewPlayer(discardLogger(), target, config)

	player.ExecuteLine(3, "1,0.1,0,vmaCreateBuffer,0,1024,128,0,32,1,0,0,0,0x0,0xBEEF,Some Name")
	// With user data disabled the line is a no-op; SetUserData must not be
	// called on the mock.
	player.ExecuteLine(4, "1,0.2,0,vmaSetAllocationUserData,0xBEEF,Another Name")
	player.ExecuteLine(5, "1,0.3,0,vmaDestroyBuffer,0xBEEF")

	require.Zero(t, player.WarningCount())
	require.NoError(t, player.Close())
}

func TestPlayerAllocateMemoryForBufferSubstitution(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := mock_replay.NewMockTarget(ctrl)
	first := mock_replay.NewMockTargetAllocation(ctrl)
	second := mock_replay.NewMockTargetAllocation(ctrl)

	gomock.InOrder(
		target.EXPECT().AllocateMemory(replay.MemoryRequirements{
			Size:           4096,
			Alignment:      256,
			MemoryTypeBits: 0xFF,
		}, gomock.Any()).DoAndReturn(
			func(requirements replay.MemoryRequirements, params replay.AllocationParams) (replay.TargetAllocation, error) {
				// requiresDedicated forces the dedicated-memory flag onto the
				// substituted allocation.
				require.NotZero(t, params.Flags&replay.AllocationCreateDedicatedMemory)
				return first, nil
			}),
		target.EXPECT().AllocateMemory(gomock.Any(), gomock.Any()).Return(second, nil),
	)
	first.EXPECT().Free().Return(nil)
	second.EXPECT().Free().Return(nil)
	target.EXPECT().Destroy().Return(nil)

	player := newTestPlayer(t, target)
	player.ExecuteLine(3, "1,0.1,0,vmaAllocateMemoryForBuffer,4096,256,255,1,0,0,0,0,0,0,0x0,0xAA")
	player.ExecuteLine(4, "1,0.2,0,vmaAllocateMemoryForImage,4096,256,255,0,0,0,0,0,0,0,0x0,0xBB")

	// The substitution is reported once, not per line.
	require.Equal(t, uint64(1), player.WarningCount())

	player.ExecuteLine(5, "1,0.3,0,vmaFreeMemory,0xAA")
	player.ExecuteLine(6, "1,0.4,0,vmaFreeMemory,0xBB")
	require.NoError(t, player.Close())
}

func TestPlayerLostAllocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := mock_replay.NewMockTarget(ctrl)
	alloc := mock_replay.NewMockTargetAllocation(ctrl)

	target.EXPECT().CreateLostAllocation().Return(alloc, nil)
	alloc.EXPECT().Touch().Return(false)
	alloc.EXPECT().Free().Return(nil)
	target.EXPECT().Destroy().Return(nil)

	player := newTestPlayer(t, target)
	player.ExecuteLine(3, "1,0.1,0,vmaCreateLostAllocation,0xCC")
	player.ExecuteLine(4, "1,0.2,0,vmaTouchAllocation,0xCC")
	player.ExecuteLine(5, "1,0.3,0,vmaFreeMemory,0xCC")

	require.Zero(t, player.WarningCount())
	require.NoError(t, player.Close())
}

func TestPlayerAllocateMemoryInPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := mock_replay.NewMockTarget(ctrl)
	pool := mock_replay.NewMockTargetPool(ctrl)
	alloc := mock_replay.NewMockTargetAllocation(ctrl)

	target.EXPECT().CreatePool(gomock.Any()).Return(pool, nil)
	target.EXPECT().AllocateMemory(gomock.Any(), gomock.Any()).DoAndReturn(
		func(requirements replay.MemoryRequirements, params replay.AllocationParams) (replay.TargetAllocation, error) {
			require.Same(t, pool, params.Pool)
			return alloc, nil
		})
	pool.EXPECT().MakeAllocationsLost().Return(nil)
	alloc.EXPECT().Free().Return(nil)
	pool.EXPECT().Destroy().Return(nil)
	target.EXPECT().Destroy().Return(nil)

	player := newTestPlayer(t, target)
	player.ExecuteLine(3, "1,0.1,0,vmaCreatePool,0,0,0,0,0,0,0xAAAA")
	player.ExecuteLine(4, "1,0.2,0,vmaAllocateMemory,4096,256,255,0,0,0,0,0,0xAAAA,0xBB")
	player.ExecuteLine(5, "1,0.3,0,vmaMakePoolAllocationsLost,0xAAAA")
	player.ExecuteLine(6, "1,0.4,0,vmaFreeMemory,0xBB")
	player.ExecuteLine(7, "1,0.5,0,vmaDestroyPool,0xAAAA")

	require.Zero(t, player.WarningCount())
	require.NoError(t, player.Close())
}

func TestPlayerGetAllocationInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := mock_replay.NewMockTarget(ctrl)
	alloc := mock_replay.NewMockTargetAllocation(ctrl)

	target.EXPECT().CreateBuffer(gomock.Any(), gomock.Any()).Return(alloc, nil)
	alloc.EXPECT().Info().Return(replay.AllocationInfo{Size: 1024}, nil)
	alloc.EXPECT().Free().Return(nil)
	target.EXPECT().Destroy().Return(nil)

	player := newTestPlayer(t, target)
	player.ExecuteLine(3, "1,0.1,0,vmaCreateBuffer,0,1024,128,0,0,1,0,0,0,0x0,0xBEEF")
	player.ExecuteLine(4, "1,0.2,0,vmaGetAllocationInfo,0xBEEF")
	player.ExecuteLine(5, "1,0.3,0,vmaDestroyBuffer,0xBEEF")

	require.Zero(t, player.WarningCount())
	require.NoError(t, player.Close())
}

func TestPlayerStatisticsFromLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := mock_replay.NewMockTarget(ctrl)
	alloc := mock_replay.NewMockTargetAllocation(ctrl)

	target.EXPECT().CreateBuffer(gomock.Any(), gomock.Any()).Return(alloc, nil)
	alloc.EXPECT().Free().Return(nil)
	target.EXPECT().Destroy().Return(nil)

	player := newTestPlayer(t, target)
	// Usage 32 is the storage buffer bit.
	player.ExecuteLine(3, "1,0.1,0,vmaCreateBuffer,0,1024,32,0,0,1,0,0,0,0x0,0xBEEF")
	player.ExecuteLine(4, "1,0.2,0,vmaDestroyBuffer,0xBEEF")

	stats := player.Statistics()
	require.Equal(t, uint64(1), stats.FunctionCallCount(capture.FunctionCreateBuffer))
	require.Equal(t, uint64(1), stats.FunctionCallCount(capture.FunctionDestroyBuffer))
	require.Equal(t, uint64(1), stats.BufferCreationCount(1))
	require.Equal(t, uint64(1), stats.TotalBufferCreationCount())
	require.NoError(t, player.Close())
}
