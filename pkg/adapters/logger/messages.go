package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Captioning %s as %s (%d bytes)": "%s を %s として処理中 (%d バイト)",
		"Decoded %d frame(s) at %dx%d":   "%d フレームをデコードしました (%dx%d)",
		"Encoded %s: %d bytes":           "%s をエンコードしました: %d バイト",
		"Output saved to %s":             "出力を %s に保存しました",
		"Summary saved to %s":            "サマリーを %s に保存しました",
		"Rejected %s: %v":                "%s を受け付けませんでした: %v",
		"Failed to decode %s: %v":        "%s のデコードに失敗しました: %v",
		"Failed to draw captions: %v":    "キャプションの描画に失敗しました: %v",
		"Failed to encode %s: %v":        "%s のエンコードに失敗しました: %v",

		// Decode stage
		"Decoded %d %s frame(s) at %dx%d":    "%d 個の %s フレームをデコード (%dx%d)",
		"Failed to save source frame %d: %v": "元フレーム %d の保存に失敗しました: %v",

		// Caption stage
		"No captions to draw":                   "描画するキャプションはありません",
		"Captioning %d frames":                  "%d フレームにキャプションを描画中",
		"Failed to save captioned frame %d: %v": "キャプション済みフレーム %d の保存に失敗しました: %v",

		// Encode stage
		"Encoded %d frame(s) as %s: %d bytes": "%d フレームを %s としてエンコード: %d バイト",

		// Server
		"Listening on %s":              "%s で待ち受け中",
		"Shutting down server":         "サーバーを停止しています",
		"Upload failed (%s): %v":       "アップロードに失敗しました (%s): %v",
		"Failed to render index: %v":   "トップページの描画に失敗しました: %v",
		"Failed to write response: %v": "レスポンスの書き込みに失敗しました: %v",
	})
}
