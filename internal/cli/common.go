package cli

import (
	"fmt"
	"io"
	"os"
	"planesteg/pkg/image"
	"planesteg/pkg/model"
	"time"

	"github.com/briandowns/spinner"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func MarkFlagsRequired(cmd *cobra.Command, flags ...string) {
	for _, flag := range flags {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			panic(err)
		}
	}
}

// NewSpinner only animates when out is a terminal
func NewSpinner(out io.Writer) *spinner.Spinner {
	return spinner.New(spinner.CharSets[4], 100*time.Millisecond, spinner.WithWriter(out))
}

func setStage(s *spinner.Spinner, stage string) {
	s.Lock()
	s.Prefix = stage + " "
	s.Unlock()
}

func readImageFile(path string) (*image.Image, model.ImageFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, model.ImageFile{}, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, model.ImageFile{}, fmt.Errorf("could not decode %s: %w", path, err)
	}
	fileInfo, err := f.Stat()
	if err != nil {
		return nil, model.ImageFile{}, err
	}

	return img, model.ImageFile{
		Name:   path,
		Format: format,
		Width:  img.Width(),
		Height: img.Height(),
		Size:   fileInfo.Size(),
	}, nil
}

// writeImageFile creates path and fills it with write. The file is removed if write fails
func writeImageFile(path string, format image.Format, img *image.Image, write func(io.Writer, image.Format) error) (model.ImageFile, error) {
	f, err := os.Create(path)
	if err != nil {
		return model.ImageFile{}, err
	}

	if err = write(f, format); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return model.ImageFile{}, err
	}
	fileInfo, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return model.ImageFile{}, err
	}
	if err = f.Close(); err != nil {
		return model.ImageFile{}, err
	}

	return model.ImageFile{
		Name:   path,
		Format: string(format),
		Width:  img.Width(),
		Height: img.Height(),
		Size:   fileInfo.Size(),
	}, nil
}

func printImageFiles(out io.Writer, files ...model.ImageFile) {
	data := make([][]string, 0, len(files))
	for _, f := range files {
		data = append(data, []string{
			f.Name,
			f.Format,
			fmt.Sprintf("%dx%d", f.Width, f.Height),
			humanize.Bytes(uint64(f.Size)),
		})
	}
	report(out, []string{"file", "format", "dimensions", "size"}, data)
}

// stage is one row of the timing table printed after every command
type stage struct {
	name     string
	duration time.Duration
}

func printStages(out io.Writer, stages ...stage) {
	var total time.Duration
	data := make([][]string, 0, len(stages)+1)
	for _, s := range stages {
		total += s.duration
		data = append(data, []string{s.name, s.duration.Round(time.Microsecond).String()})
	}
	data = append(data, []string{"total", total.Round(time.Microsecond).String()})
	report(out, []string{"stage", "time"}, data)
}

func report(out io.Writer, header []string, data [][]string) {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetBorder(true)
	table.AppendBulk(data)
	table.Render()
}
