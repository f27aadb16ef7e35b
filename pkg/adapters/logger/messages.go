package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Generating %s":                           "%s を生成中",
		"Wrote %s (%dx%d)":                        "%s を書き出しました (%dx%d)",
		"Processing %d assets with %d workers":    "%d 件のアセットを %d ワーカーで処理中",
		"Batch finished: %d succeeded, %d failed": "バッチ完了: 成功 %d 件, 失敗 %d 件",
		"Generated %d assets":                     "%d 件のアセットを生成しました",
		"Change detected: %s":                     "変更を検出しました: %s",
		"Interrupted, shutting down...":           "中断されました。シャットダウン中...",
		"Report saved to %s":                      "レポートを %s に保存しました",
		"Watching %s for changes":                 "%s の変更を監視しています",

		// Subject stage
		"Cropping %dx%d to %dx%d at +%d+%d":   "%dx%d を %dx%d に切り抜き中 (+%d+%d)",
		"Fitted to %dx%d (max %dx%d)":         "%dx%d に収めました (最大 %dx%d)",
		"Mockup already fits within %dx%d":    "モックアップは %dx%d に収まっています",
		"Mockup resized to fit: %dx%d":        "モックアップを %dx%d に縮小しました",
		"Rounded corners: radius %d":          "角丸を適用: 半径 %d",
		"Subject prepared: %dx%d with shadow": "被写体を準備しました: %dx%d (影付き)",

		// Background stage
		"Gradient filled: %dx%d":                 "グラデーションを描画: %dx%d",
		"Curves drawn: %d paths, seed %s":        "曲線を描画: %d 本, シード %s",
		"Top image: %dx%d -> %dx%d (max: %dx%d)": "トップ画像: %dx%d -> %dx%d (最大: %dx%d)",
		"Top image skipped: no room in %dx%d":    "トップ画像をスキップ: %dx%d に収まりません",

		// Composite stage
		"Subject %dx%d placed at +%d+%d":           "被写体 %dx%d を +%d+%d に配置",
		"Bottom logo: %dx%d -> %dx%d (max: %dx%d)": "ボトムロゴ: %dx%d -> %dx%d (最大: %dx%d)",
		"Bottom logo skipped: no room in %dx%d":    "ボトムロゴをスキップ: %dx%d に収まりません",
		"Resizing %dx%d to %dx%d":                  "%dx%d を %dx%d にリサイズ中",

		// Banner stage
		"Generating banner":                            "バナーを生成中",
		"Phone crop %dx%d at +%d+%d, resized to %dx%d": "端末画像 %dx%d を +%d+%d で切り抜き、%dx%d にリサイズ",
		"Phone %dx%d placed at +%d+%d":                 "端末画像 %dx%d を +%d+%d に配置",
		"Banner logo: %dx%d -> %dx%d":                  "バナーロゴ: %dx%d -> %dx%d",
		"Banner logo skipped: empty image":             "バナーロゴをスキップ: 画像が空です",
		"Banner text: %d lines at size %d":             "バナーテキスト: %d 行, サイズ %d",
		"Banner generated: %dx%d":                      "バナー生成完了: %dx%d",

		// Encode stage
		"Wrote %s (%dx%d, %d bytes)": "%s を書き出しました (%dx%d, %d バイト)",

		// Warnings
		"Skipping decorative curves: %s":         "装飾曲線をスキップします: %s",
		"Failed to remove temp directory %s: %s": "一時ディレクトリ %s の削除に失敗しました: %s",

		// Errors
		"Failed to generate %s: %s":  "%s の生成に失敗しました: %s",
		"Failed to write report: %s": "レポートの書き込みに失敗しました: %s",
		"Watch failed: %s":           "監視に失敗しました: %s",
	})
}
