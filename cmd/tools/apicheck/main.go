package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/zhouzirui/wizcare/backend/internal/analysis/stress"
	"github.com/zhouzirui/wizcare/backend/internal/config"
	"github.com/zhouzirui/wizcare/backend/internal/service/ai"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if err := godotenv.Load(); err != nil {
		log.Printf("[WARN] 无法加载 .env，改用系统环境变量: %v", err)
	}

	message := flag.String("message", "Hello, how are you?", "探测用的用户消息")
	raw := flag.Bool("raw", false, "直接发送 message，不经过陪伴提示模板")
	timeout := flag.Duration("timeout", 0, "请求超时时间，默认使用 AI_TIMEOUT")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}

	if *timeout <= 0 {
		*timeout = cfg.AI.Timeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	generator, err := ai.NewGenerator(ctx, cfg.AI)
	if errors.Is(err, ai.ErrCredentialMissing) {
		log.Fatalf("%s 凭证未配置，服务将以本地兜底模式运行", cfg.AI.Provider)
	}
	if err != nil {
		log.Fatalf("创建生成器失败: %v", err)
	}

	prompt := *message
	level := stress.Classify(*message)
	if !*raw {
		prompt, err = ai.NewPromptBuilder().Build(ctx, level, nil, *message)
		if err != nil {
			log.Fatalf("提示组装失败: %v", err)
		}
	}

	log.Printf("开始探测: provider=%s level=%s timeout=%s", cfg.AI.Provider, level, *timeout)

	start := time.Now()
	text, err := generator.Generate(ctx, prompt, ai.DefaultParams())
	if err != nil {
		log.Fatalf("探测失败: kind=%s err=%v", ai.KindOf(err), err)
	}

	log.Printf("探测成功 (%s): %s", time.Since(start).Round(time.Millisecond), text)
}
