// Package main provides localization for the storeshots CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Input":       "入力",
		"Output":      "出力先",
		"Style":       "スタイル",
		"Banner":      "バナー",
		"Performance": "パフォーマンス",
		"Debug":       "デバッグ",
		"Logging":     "ログ",

		// Root command
		"Create app store screenshots from app captures":                                                                      "アプリのキャプチャからストア用スクリーンショットを作成",
		"storeshots places app screenshots on gradient backgrounds with decorative curves for the App Store and Google Play.": "storeshotsはアプリのスクリーンショットを装飾曲線付きのグラデーション背景に配置し、App StoreとGoogle Play用の画像を作成します。",

		// Generate command
		"Generate mockups for every screenshot and profile":                         "全スクリーンショットと全プロファイルのモックアップを生成",
		"Find screenshots, render one mockup per store profile and write a report.": "スクリーンショットを探し、ストアプロファイルごとにモックアップを描画してレポートを書き出します。",

		// Feature command
		"Generate the Google Play Feature Graphic":                 "Google Playのフィーチャーグラフィックを生成",
		"Render the 1024x500 Feature Graphic from one screenshot.": "1枚のスクリーンショットから1024x500のフィーチャーグラフィックを描画します。",

		// Watch command
		"Regenerate mockups when screenshots change":                                 "スクリーンショットの変更時にモックアップを再生成",
		"Run generate once, then regenerate the assets of every changed screenshot.": "一度generateを実行し、その後は変更されたスクリーンショットのアセットを再生成します。",

		// Profiles command
		"List device profiles": "デバイスプロファイルを一覧表示",
		"KEY":                  "キー",
		"SIZE":                 "サイズ",
		"OUTPUT":               "出力",
		"DEVICE FRAME":         "デバイスフレーム",

		// Version command
		"Show version information": "バージョン情報を表示",
		"storeshots version %s":    "storeshots バージョン %s",

		// Input flags
		"Configuration file (.yaml, .yml or .toml)":         "設定ファイル（.yaml, .yml, .toml）",
		"Screenshots directory":                             "スクリーンショットのディレクトリ",
		"Screenshot file pattern (default: 0*.png)":         "スクリーンショットのファイルパターン（デフォルト: 0*.png）",
		"Directory of device-framed screenshots for iPhone": "iPhone用のデバイスフレーム付きスクリーンショットのディレクトリ",
		"Screenshot to show on the phone (required)":        "端末に表示するスクリーンショット（必須）",

		// Output flags
		"Output directory":                                         "出力ディレクトリ",
		"Device profile (repeatable, default: all store profiles)": "デバイスプロファイル（複数指定可、デフォルト: 全ストアプロファイル）",
		"Skip the Feature Graphic":                                 "フィーチャーグラフィックを生成しない",
		"Do not write REPORT.md":                                   "REPORT.mdを書き出さない",

		// Style flags
		"Gradient preset (premium_purple, ocean_blue, sunset_orange, fresh_green, dark_purple, bold_red_pink)": "グラデーションプリセット（premium_purple, ocean_blue, sunset_orange, fresh_green, dark_purple, bold_red_pink）",
		"Brand color; the gradient ends at a darker shade":                                                     "ブランドカラー。グラデーションはその暗い色で終わります",
		"Gradient start color (hex)":                                                                           "グラデーションの開始色（16進数）",
		"Gradient end color (hex)":                                                                             "グラデーションの終了色（16進数）",
		"Logo image":                                                                                           "ロゴ画像",
		"Directory of top images matched by screenshot name":                                                   "スクリーンショット名で対応付けるトップ画像のディレクトリ",

		// Banner flags
		"Text line (repeatable)":             "テキスト行（複数指定可）",
		"Text color (hex, default: #ffffff)": "文字色（16進数、デフォルト: #ffffff）",
		"TrueType font for the text":         "テキスト用のTrueTypeフォント",
		"Curve seed (default: current time)": "曲線のシード（デフォルト: 現在時刻）",

		// Performance flags
		"Number of parallel workers (0 = number of CPUs)": "並列ワーカー数（0 = CPU数）",

		// Debug flags
		"Enable debug output":        "デバッグ出力を有効化",
		"Directory for debug output": "デバッグ出力のディレクトリ",

		// Logging flags
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "全てのログ出力を抑制",
		"Also write logs to a rotating file":   "ローテーションするファイルにもログを書き出す",

		// Runtime messages
		"%d assets failed": "%d 件のアセットが失敗しました",

		// Report content
		"Mockup Report":              "モックアップレポート",
		"Generated at":               "生成日時",
		"Overview":                   "概要",
		"Item":                       "項目",
		"Value":                      "値",
		"Assets":                     "アセット",
		"Succeeded":                  "成功",
		"Failed":                     "失敗",
		"Total Size":                 "合計サイズ",
		"Elapsed":                    "所要時間",
		"Settings":                   "設定",
		"Screenshots":                "スクリーンショット",
		"Gradient":                   "グラデーション",
		"Profiles":                   "プロファイル",
		"Workers":                    "ワーカー数",
		"Source":                     "元画像",
		"Profile":                    "プロファイル",
		"Size":                       "サイズ",
		"File Size":                  "ファイルサイズ",
		"Failures":                   "失敗一覧",
		"Generated by storeshots %s": "storeshots %s により生成",
	})
}
