package gamemap

import (
	"context"
	"errors"
	"image"
	"sync"
)

func findRows(ctx context.Context, rows int) (<-chan int, <-chan error, error) {
	out := make(chan int)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		for row := 1; row <= rows; row++ {
			if ctx.Err() != nil {
				errc <- errors.New("classification cancelled")
				return
			}
			select {
			case out <- row:
			case <-ctx.Done():
				errc <- errors.New("classification cancelled")
				return
			}
		}
	}()
	return out, errc, nil
}

// Each worker writes to its own slots of squares so the result is in
// row-major order however the rows are scheduled
func rowWorker(ctx context.Context, c *classifier, m image.Image, in <-chan int, squares []Square) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		columns := c.cfg.Squares.X
		for row := range in {
			for column := 1; column <= columns; column++ {
				squares[(row-1)*columns+column-1] = c.square(m, Cell{column, row})
			}
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// classifyParallel is equivalent to Classify but spreads the rows across
// workers.
func classifyParallel(ctx context.Context, m image.Image, cfg *MapConfig, workers int) ([]Square, error) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	c := newClassifier(cfg)
	squares := make([]Square, cfg.Squares.X*cfg.Squares.Y)

	var errcList []<-chan error

	rows, errc, err := findRows(ctx, cfg.Squares.Y)
	if err != nil {
		return nil, err
	}
	errcList = append(errcList, errc)

	for i := 0; i < workers; i++ {
		errc, err := rowWorker(ctx, c, m, rows, squares)
		if err != nil {
			return nil, err
		}
		errcList = append(errcList, errc)
	}

	if err := waitForPipeline(errcList...); err != nil {
		return nil, err
	}

	return squares, nil
}
