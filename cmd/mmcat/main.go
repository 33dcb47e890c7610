// mmcat 是基于内存映射的文件检查工具。
//
// 用法:
//
//	mmcat [全局选项] <命令> <文件> [命令参数]
//
// 全局选项:
//
//	-p, --page-size  映射页大小（字节，默认 1GiB）
//
// 命令:
//
//	stat <file>            查看文件映射信息（大小、页数、页大小）
//	dump <file>            把文件内容写到标准输出
//	  --offset, -o         起始偏移（默认 0）
//	  --length, -l         输出字节数（默认到文件末尾）
//	sum <file>...          计算文件内容的 xxhash64 校验和
//
// 退出码:
//
//	0: 命令执行成功
//	1: 命令执行失败（文件不可读、写出失败等）
//	2: 参数错误（无效偏移、缺少文件参数、未知命令等）
//
// 示例:
//
//	mmcat stat /var/log/app.log
//	mmcat dump --offset 1024 --length 256 data.bin
//	mmcat sum *.bin
//	mmcat -p 4096 stat big.dat    # 使用 4KiB 映射页
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/omeyang/ckit/pkg/io/xmmap"
	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "mmcat",
		Usage:   "基于内存映射的文件检查工具",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "page-size",
				Aliases: []string{"p"},
				Usage:   "映射页大小（字节）",
				Value:   xmmap.DefaultPageSize,
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		Authors: []any{
			"CKit Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			// ExitCoder 错误（如未知命令）的消息需在此输出，
			// 替代 HandleExitCoder 的默认 os.Exit 行为。
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run() int {
	app := createApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupSignalHandler(cancel)

	if err := app.Run(ctx, os.Args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		// CLI 框架产生的参数错误（如未知 flag、未知命令）也返回退出码 2，
		// 与文档契约"参数错误 → 退出码 2"保持一致。
		if isCLIUsageError(err) {
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}

// setupSignalHandler 处理中断信号。
func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel() // 第一次信号: 优雅取消

		<-sigCh
		signal.Stop(sigCh) // 回收订阅
		os.Exit(130)       // 第二次信号: 强制退出
	}()
}

// isCLIUsageError 判断是否为 urfave/cli 产生的参数类错误。
func isCLIUsageError(err error) bool {
	var exitCoder cli.ExitCoder
	return errors.As(err, &exitCoder)
}
