// Package console 书店库存管理的命令行菜单
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	appbook "github.com/xiebiao/bookstore-inventory/internal/application/book"
	apperrors "github.com/xiebiao/bookstore-inventory/pkg/errors"
)

// 菜单文本
const (
	welcomeText = "\nWelcome to our Bookstore system!"
	readyText   = "\nDatabase is ready."

	mainMenu = "\nPlease select one of the following options:" +
		"\n\t1\t-\tEnter New Book." +
		"\n\t2\t-\tUpdate Existing Book." +
		"\n\t3\t-\tSearch Books." +
		"\n\t4\t-\tDelete Book." +
		"\n\t0\t-\tExit.\n"

	invalidMainOption = "Invalid selection. Please choose one of the options on the menu."
	invalidOption     = "Invalid selection. Please try again."
)

// maxLineSize 单行输入上限
const maxLineSize = 1024 * 1024

// UseCases 控制台依赖的应用层用例
type UseCases struct {
	Setup      *appbook.SetupCatalogUseCase
	AddBook    *appbook.AddBookUseCase
	CheckTitle *appbook.CheckTitleUseCase
	Search     *appbook.SearchBooksUseCase
	Update     *appbook.UpdateBookUseCase
	Delete     *appbook.DeleteBookUseCase
	Export     *appbook.ExportResultsUseCase
}

// Console 交互式菜单
// 单goroutine处理菜单,输入由后台goroutine逐行读取
type Console struct {
	in     io.Reader
	out    io.Writer
	logger *slog.Logger
	uc     UseCases

	lines chan string
	done  chan struct{}
}

// New 创建控制台
func New(in io.Reader, out io.Writer, logger *slog.Logger, uc UseCases) *Console {
	return &Console{
		in:     in,
		out:    out,
		logger: logger,
		uc:     uc,
	}
}

// Run 初始化数据库后进入主菜单循环
// 选择0、输入结束(EOF)或ctx取消时返回nil
// 初始化失败返回错误,由调用方终止程序
func (c *Console) Run(ctx context.Context) error {
	c.startReader()
	defer close(c.done)

	c.println(welcomeText)
	if err := c.uc.Setup.Execute(ctx); err != nil {
		return fmt.Errorf("初始化数据库失败: %w", err)
	}
	c.println(readyText)

	err := c.loop(ctx)
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		c.logger.Debug("退出菜单", "reason", err)
		return nil
	}
	return err
}

// loop 主菜单
func (c *Console) loop(ctx context.Context) error {
	for {
		option, err := c.prompt(ctx, mainMenu)
		if err != nil {
			return err
		}

		switch option {
		case "1":
			err = c.enterBook(ctx)
		case "2":
			err = c.updateBook(ctx)
		case "3":
			err = c.searchBooks(ctx)
		case "4":
			err = c.deleteBook(ctx)
		case "0":
			return nil
		default:
			c.println(invalidMainOption)
		}
		if err != nil {
			return err
		}
	}
}

// startReader 后台逐行读取输入,读完后关闭lines
// Run返回后goroutine可能仍阻塞在Scan上(如stdin),直到下一行输入或EOF才退出
// Console只能Run一次
func (c *Console) startReader() {
	c.lines = make(chan string)
	c.done = make(chan struct{})

	scanner := bufio.NewScanner(c.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	go func() {
		defer close(c.lines)
		for scanner.Scan() {
			select {
			case c.lines <- strings.TrimSuffix(scanner.Text(), "\r"):
			case <-c.done:
				return
			}
		}
		if err := scanner.Err(); err != nil {
			c.logger.Warn("读取输入失败", "error", err)
		}
	}()
}

// prompt 输出提示并读取一行
// 输入结束返回io.EOF
func (c *Console) prompt(ctx context.Context, text string) (string, error) {
	fmt.Fprint(c.out, text)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}

// promptUpper 读取一行并转为大写,用于菜单选项
func (c *Console) promptUpper(ctx context.Context, text string) (string, error) {
	line, err := c.prompt(ctx, text)
	return strings.ToUpper(line), err
}

func (c *Console) println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}

// report 输出用户提示,内部错误只写日志
func (c *Console) report(op string, err error) {
	appErr := apperrors.GetAppError(err)
	c.logger.Error("操作失败", "op", op, "code", appErr.Code, "error", err)
	c.println(appErr.Message)
}

// hint 输入校验失败,只提示不记录错误日志
func (c *Console) hint(err error) {
	c.logger.Debug("输入不合法", "error", err)
	c.println(apperrors.GetAppError(err).Message)
}

// printTable 输出结果数量,有结果时输出表格
func (c *Console) printTable(books []*appbook.BookResponse) {
	fmt.Fprint(c.out, appbook.ResultsHeader(len(books)))
	if len(books) > 0 {
		c.println(appbook.BookTable(books))
	}
}
