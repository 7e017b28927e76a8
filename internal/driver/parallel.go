package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"modlint/internal/diag"
	"modlint/internal/source"
)

// CheckDirResult holds the outcome for one file of a directory run.
type CheckDirResult struct {
	Path   string
	FileID source.FileID
	Bag    *diag.Bag
}

// listPyFiles returns the sorted list of all *.py files under dir.
func listPyFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".py") {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Deterministic order regardless of walk details.
	sort.Strings(files)
	return files, nil
}

// CheckDir lints every *.py file under dir in parallel.
func CheckDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []CheckDirResult, error) {
	files, err := listPyFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Preload files sequentially: FileSet is not safe for concurrent Add.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each goroutine owns a unique index, so no mutex is needed.
	results := make([]CheckDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(opts.MaxDiagnostics)

			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
					Primary:  source.Span{},
				})
				results[i] = CheckDirResult{Path: path, FileID: 0, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			if opts.Cache != nil {
				if cached, ok := opts.Cache.Lookup(file, opts.ConfigHash); ok {
					for _, d := range cached {
						bag.Add(d)
					}
					bag.Sort()
					results[i] = CheckDirResult{Path: path, FileID: fileID, Bag: bag}
					return nil
				}
			}

			CheckFile(file, opts.Checks, bag)
			bag.Sort()

			if opts.Cache != nil {
				opts.Cache.Store(file, opts.ConfigHash, bag.Items())
			}

			results[i] = CheckDirResult{Path: path, FileID: fileID, Bag: bag}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}

	return fileSet, results, nil
}
