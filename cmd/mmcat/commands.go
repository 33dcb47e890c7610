package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/omeyang/ckit/pkg/io/xmmap"
	"github.com/urfave/cli/v3"
)

// usageError 表示参数错误，映射到退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// createCommands 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createStatCommand(),
		createDumpCommand(),
		createSumCommand(),
	}
}

// createStatCommand 创建 stat 子命令。
func createStatCommand() *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Aliases:   []string{"s"},
		Usage:     "查看文件映射信息",
		ArgsUsage: "<file>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 1 {
				return &usageError{msg: "stat 需要且仅需要一个文件参数"}
			}
			return cmdStat(ctx, cmd.Root().Int("page-size"), args[0], cmd.Root().Writer)
		},
	}
}

// createDumpCommand 创建 dump 子命令。
func createDumpCommand() *cli.Command {
	return &cli.Command{
		Name:      "dump",
		Aliases:   []string{"d"},
		Usage:     "把文件内容写到标准输出",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "offset",
				Aliases: []string{"o"},
				Usage:   "起始偏移（字节）",
			},
			&cli.IntFlag{
				Name:    "length",
				Aliases: []string{"l"},
				Usage:   "输出字节数，-1 表示到文件末尾",
				Value:   -1,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 1 {
				return &usageError{msg: "dump 需要且仅需要一个文件参数"}
			}
			offset := int64(cmd.Int("offset"))
			length := int64(cmd.Int("length"))
			return cmdDump(ctx, cmd.Root().Int("page-size"), args[0], offset, length, cmd.Root().Writer)
		},
	}
}

// createSumCommand 创建 sum 子命令。
func createSumCommand() *cli.Command {
	return &cli.Command{
		Name:      "sum",
		Usage:     "计算文件内容的 xxhash64 校验和",
		ArgsUsage: "<file>...",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return &usageError{msg: "sum 至少需要一个文件参数"}
			}
			return cmdSum(ctx, cmd.Root().Int("page-size"), args, cmd.Root().Writer)
		},
	}
}

// openSource 用指定页大小映射文件。
func openSource(path string, pageSize int) (*xmmap.Source, error) {
	if pageSize <= 0 {
		return nil, &usageError{msg: fmt.Sprintf("无效的页大小: %d", pageSize)}
	}
	return xmmap.Open(path, xmmap.WithPageSize(int64(pageSize)))
}

// cmdStat 打印文件映射信息。
func cmdStat(ctx context.Context, pageSize int, path string, out io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	src, err := openSource(path, pageSize)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, "文件:     %s\n", path)
	fmt.Fprintf(out, "大小:     %d 字节\n", src.Size())
	fmt.Fprintf(out, "页大小:   %d 字节\n", src.PageSize())
	fmt.Fprintf(out, "页数:     %d\n", src.Pages())
	return nil
}

// cmdDump 把 [offset, offset+length) 范围的内容写到 out。
// length 为负表示输出到文件末尾。
func cmdDump(ctx context.Context, pageSize int, path string, offset, length int64, out io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if offset < 0 {
		return &usageError{msg: fmt.Sprintf("无效的偏移: %d", offset)}
	}

	src, err := openSource(path, pageSize)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	if offset > src.Size() {
		return &usageError{msg: fmt.Sprintf("偏移 %d 超出文件大小 %d", offset, src.Size())}
	}

	r := src.NewReader()
	if err := r.SeekTo(offset); err != nil {
		return err
	}

	if out == nil {
		out = os.Stdout
	}

	var reader io.Reader = r
	if length >= 0 {
		reader = io.LimitReader(r, length)
	}

	if _, err := io.Copy(out, reader); err != nil {
		return fmt.Errorf("写出失败: %w", err)
	}
	return nil
}

// cmdSum 计算每个文件的 xxhash64 并按 "校验和  文件名" 格式输出。
func cmdSum(ctx context.Context, pageSize int, paths []string, out io.Writer) error {
	if out == nil {
		out = os.Stdout
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		sum, err := sumFile(path, pageSize)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%016x  %s\n", sum, path)
	}
	return nil
}

// sumFile 通过映射读取计算单个文件的 xxhash64。
func sumFile(path string, pageSize int) (uint64, error) {
	src, err := openSource(path, pageSize)
	if err != nil {
		return 0, err
	}
	defer func() { _ = src.Close() }()

	h := xxhash.New()
	if _, err := io.Copy(h, src.NewReader()); err != nil {
		return 0, fmt.Errorf("读取 %s 失败: %w", path, err)
	}
	return h.Sum64(), nil
}
