package pipeline_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/anvil/internal/adapters/telemetry"
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports/mocks"
	"go.trai.ch/anvil/internal/engine/pipeline"
	"go.trai.ch/anvil/internal/engine/planner"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// pathLocator fakes a search path containing only the given executables.
type pathLocator map[string]string

func (l pathLocator) Look(name string) (string, bool) {
	path, ok := l[name]
	return path, ok
}

func tempTarget(t *testing.T) domain.BuildTarget {
	t.Helper()
	tmpDir := t.TempDir()
	return domain.BuildTarget{
		SourcePath: filepath.Join(tmpDir, "loader.cpp"),
		BuildDir:   filepath.Join(tmpDir, "build"),
		BinDir:     filepath.Join(tmpDir, "bin"),
		OutputName: "loader",
	}
}

func linuxProber(ctrl *gomock.Controller) *mocks.MockProber {
	prober := mocks.NewMockProber(ctrl)
	prober.EXPECT().Probe(gomock.Any()).Return(domain.HostProfile{
		OS:      domain.OSLinux,
		RawArch: "x86_64",
		Is64Bit: true,
		Tuning:  domain.TuningGeneric,
	}).AnyTimes()
	return prober
}

func TestPipeline_Run_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	target := tempTarget(t)

	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	receipts := mocks.NewMockReceiptStore(ctrl)
	receipts.EXPECT().Put(gomock.Any()).Return(nil).Times(1)

	logger := mocks.NewMockLogger(ctrl)

	p := pipeline.New(
		linuxProber(ctrl),
		planner.NewPlanner(pathLocator{"g++": "/usr/bin/g++"}),
		runner,
		telemetry.NewNoOp(),
		receipts,
		logger,
	)

	result, err := p.Run(context.Background(), target)
	require.NoError(t, err)

	assert.Equal(t, pipeline.PhaseDone, p.Phase())
	assert.Equal(t, domain.ToolchainGCC, result.Plan.Toolchain)
	assert.Equal(t, target.OutputFile(domain.OSLinux), result.Output)

	// Build and bin directories were created before execution.
	assert.DirExists(t, target.BuildDir)
	assert.DirExists(t, target.BinDir)
}

func TestPipeline_Run_CompileFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	target := tempTarget(t)

	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(zerr.New("exit status 1")).
		Times(1)

	// No receipt is written for a failed run.
	receipts := mocks.NewMockReceiptStore(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	p := pipeline.New(
		linuxProber(ctrl),
		planner.NewPlanner(pathLocator{"g++": "/usr/bin/g++"}),
		runner,
		telemetry.NewNoOp(),
		receipts,
		logger,
	)

	_, err := p.Run(context.Background(), target)
	require.ErrorIs(t, err, domain.ErrCompileFailed)
	assert.Equal(t, pipeline.PhaseFailed, p.Phase())
}

func TestPipeline_Run_ResourceCompileFailureAbortsPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	target := tempTarget(t)
	target.ResourceScript = filepath.Join(filepath.Dir(target.BuildDir), "loader.rc")
	require.NoError(t, os.WriteFile(target.ResourceScript, []byte("1 ICON loader.ico\n"), 0o600))

	prober := mocks.NewMockProber(ctrl)
	prober.EXPECT().Probe(gomock.Any()).Return(domain.HostProfile{
		OS:      domain.OSWindows,
		RawArch: "x86_64",
		Is64Bit: true,
		Tuning:  domain.TuningGeneric,
	})

	// The rc command fails; the compile command must never run.
	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command, _, _ io.Writer) error {
			assert.Equal(t, domain.RoleResourceCompile, cmd.Role)
			return zerr.New("exit status 1")
		}).
		Times(1)

	receipts := mocks.NewMockReceiptStore(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	p := pipeline.New(
		prober,
		planner.NewPlanner(pathLocator{"cl": `C:\msvc\cl.exe`}),
		runner,
		telemetry.NewNoOp(),
		receipts,
		logger,
	)

	_, err := p.Run(context.Background(), target)
	require.ErrorIs(t, err, domain.ErrResourceCompileFailed)
	assert.Equal(t, pipeline.PhaseFailed, p.Phase())
}

func TestPipeline_Run_NoToolchain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	target := tempTarget(t)

	// Nothing on the search path: no command is ever executed.
	runner := mocks.NewMockCommandRunner(ctrl)
	receipts := mocks.NewMockReceiptStore(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	p := pipeline.New(
		linuxProber(ctrl),
		planner.NewPlanner(pathLocator{}),
		runner,
		telemetry.NewNoOp(),
		receipts,
		logger,
	)

	_, err := p.Run(context.Background(), target)
	require.ErrorIs(t, err, domain.ErrToolchainNotFound)
	assert.Equal(t, pipeline.PhaseFailed, p.Phase())
}

func TestPipeline_Plan_DoesNotExecute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	target := tempTarget(t)

	runner := mocks.NewMockCommandRunner(ctrl)
	receipts := mocks.NewMockReceiptStore(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	p := pipeline.New(
		linuxProber(ctrl),
		planner.NewPlanner(pathLocator{"g++": "/usr/bin/g++"}),
		runner,
		telemetry.NewNoOp(),
		receipts,
		logger,
	)

	host, plan, err := p.Plan(context.Background(), target)
	require.NoError(t, err)

	assert.Equal(t, domain.OSLinux, host.OS)
	require.Len(t, plan.Commands, 1)
	assert.Equal(t, "g++", plan.Commands[0].Path)

	// No directories are created by a dry run.
	assert.NoDirExists(t, target.BuildDir)
}

func TestPipeline_Run_ReceiptFailureDoesNotFailBuild(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	target := tempTarget(t)

	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	receipts := mocks.NewMockReceiptStore(ctrl)
	receipts.EXPECT().Put(gomock.Any()).Return(zerr.New("disk full")).Times(1)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).Times(1)

	p := pipeline.New(
		linuxProber(ctrl),
		planner.NewPlanner(pathLocator{"g++": "/usr/bin/g++"}),
		runner,
		telemetry.NewNoOp(),
		receipts,
		logger,
	)

	result, err := p.Run(context.Background(), target)
	require.NoError(t, err)
	assert.Equal(t, pipeline.PhaseDone, p.Phase())
	assert.NotNil(t, result)
}
