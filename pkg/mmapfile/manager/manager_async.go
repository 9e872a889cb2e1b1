package manager

import (
	"context"

	"github.com/calvinalkan/mmapfile/internal/mmiofs"
	"github.com/calvinalkan/mmapfile/pkg/mmapfile"
)

// run spawns fn on its own goroutine and returns a channel that receives
// exactly one value: fn's result, or ctx.Err() if ctx is done first.
func run(ctx context.Context, fn func() error) <-chan error {
	out := make(chan error, 1)

	go func() {
		out <- fn()
	}()

	result := make(chan error, 1)

	go func() {
		select {
		case err := <-out:
			result <- err
		case <-ctx.Done():
			result <- ctx.Err()
		}
	}()

	return result
}

// CreateMmapAsync is the asynchronous counterpart to CreateMmap. The
// returned channel receives the created MappedFile's creation error (or
// ctx.Err() if ctx completes first); callers wanting the *mmapfile.MappedFile
// itself should prefer CreateMmap directly, since returning an owned
// resource over a channel invites leaks when ctx is canceled after creation
// succeeds but before the caller reads the channel.
func CreateMmapAsync(ctx context.Context, fsys mmiofs.FS, path string, size uint64, opts ...mmapfile.FlushPolicy) <-chan error {
	return run(ctx, func() error {
		mf, err := CreateMmap(fsys, path, size, opts...)
		if err != nil {
			return err
		}

		return mf.Close()
	})
}

// UpdateRegionAsync writes data into mf at offset and flushes before
// signaling completion, regardless of mf's configured flush policy, so a
// caller that only observes the returned channel sees durable data.
func UpdateRegionAsync(ctx context.Context, mf *mmapfile.MappedFile, offset uint64, data []byte) <-chan error {
	return run(ctx, func() error {
		if err := mf.UpdateRegion(offset, data); err != nil {
			return err
		}

		return mf.Flush()
	})
}

// FlushAsync flushes mf on a spawned goroutine.
func FlushAsync(ctx context.Context, mf *mmapfile.MappedFile) <-chan error {
	return run(ctx, func() error {
		return mf.Flush()
	})
}

// CopyMmapAsync is the asynchronous counterpart to CopyMmap.
func CopyMmapAsync(ctx context.Context, fsys mmiofs.FS, src, dst string) <-chan error {
	return run(ctx, func() error {
		return CopyMmap(fsys, src, dst)
	})
}

// DeleteMmapAsync is the asynchronous counterpart to DeleteMmap.
func DeleteMmapAsync(ctx context.Context, fsys mmiofs.FS, path string) <-chan error {
	return run(ctx, func() error {
		return DeleteMmap(fsys, path)
	})
}
