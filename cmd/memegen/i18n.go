// Package main provides localization for the memegen CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// App
		"Add top and bottom captions to images and animated GIFs": "画像やアニメーションGIFに上下のキャプションを追加",
		"Error: %s":                                               "エラー: %s",

		// Global flags
		"YAML configuration file":                "YAML設定ファイル",
		"Log level (debug, info, warn, error)":   "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                "すべてのログ出力を抑制",
		"Save intermediate frames for debugging": "デバッグ用に中間フレームを保存",
		"Directory for debug output":             "デバッグ出力先ディレクトリ",

		// Caption command
		"Caption an image file":                                    "画像ファイルにキャプションを付ける",
		"Text drawn at the top of the image":                       "画像の上部に描画するテキスト",
		"Text drawn at the bottom of the image":                    "画像の下部に描画するテキスト",
		"Output file path (default: meme.<ext> next to the input)": "出力ファイルパス（デフォルト: 入力と同じ場所の meme.<拡張子>）",
		"Overwrite the output file if it exists":                   "出力ファイルが存在する場合は上書き",
		"Write a Markdown summary to this path":                    "Markdownサマリーの出力先",
		"An input file is required":                                "入力ファイルを指定してください",
		"%s already exists, use --force to overwrite":              "%s は既に存在します。上書きするには --force を指定してください",

		// Serve command
		"Serve the upload form over HTTP":       "アップロードフォームをHTTPで提供",
		"Address to listen on (default: :8080)": "待ち受けアドレス（デフォルト: :8080）",
		"Largest accepted upload in bytes":      "受け付ける最大アップロードサイズ（バイト）",

		// Version command
		"Show version information": "バージョン情報を表示",
		"memegen version %s":       "memegen バージョン %s",
	})
}
