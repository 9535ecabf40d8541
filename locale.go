package main

import (
	"strings"

	"golang.org/x/text/language"
)

var supportedLanguages = []language.Tag{
	language.English, // first one is the fallback
	language.Korean,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// MatchLanguage maps a POSIX locale value like "ko_KR.UTF-8" to a supported language.
func MatchLanguage(locale string) language.Tag {
	// LANGUAGE may hold a priority list: "ko:en"
	locale, _, _ = strings.Cut(strings.TrimSpace(locale), ":")
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" {
		return supportedLanguages[0]
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return supportedLanguages[0]
	}
	_, i, confidence := languageMatcher.Match(tag)
	if confidence == language.No {
		return supportedLanguages[0]
	}
	return supportedLanguages[i]
}

type Messages struct {
	Language language.Tag

	Version              string
	Select               string
	AddToIgnoreList      string
	RemoveFromIgnoreList string
	EnterFilePath        string
	AddSuccess           string
	RemoveSuccess        string
	// format args: folder name
	DependencyFolderFound string
	// format args: folder name, folder size
	DeletingFolder     string
	ReinstallingModule string
	// format args: platform
	UnsupportedPlatform string
	// format args: path
	NotInsideDropbox string
	IsIgnored        string
	IsNotIgnored     string
	Aborted          string
}

var englishMessages = Messages{
	Language:              language.English,
	Version:               "version",
	Select:                "Select",
	AddToIgnoreList:       "Add into the ignore list",
	RemoveFromIgnoreList:  "Remove from the ignore list",
	EnterFilePath:         "Please enter the file path",
	AddSuccess:            "Add to ignore list success!",
	RemoveSuccess:         "Remove from ignore list success!",
	DependencyFolderFound: "%s folder found. Do you want to add this folder to the ignore list? (npm modules will be deleted and reinstalled.)",
	DeletingFolder:        "Deleting %s folder (%s)...",
	ReinstallingModule:    "Reinstalling npm module...",
	UnsupportedPlatform:   "Sorry... %s is not a supported platform.",
	NotInsideDropbox:      "warning: %s is not inside a known Dropbox folder",
	IsIgnored:             "%s is in the ignore list",
	IsNotIgnored:          "%s is not in the ignore list",
	Aborted:               "aborted",
}

var koreanMessages = Messages{
	Language:              language.Korean,
	Version:               "버전",
	Select:                "실행 유형을 선택해주세요.",
	AddToIgnoreList:       "1 무시 항목에 추가",
	RemoveFromIgnoreList:  "0 무시 항목에서 제거",
	EnterFilePath:         "파일 경로를 입력해주세요.",
	AddSuccess:            "무시 목록에 추가 성공!",
	RemoveSuccess:         "무시 목록에서 제거 성공!",
	DependencyFolderFound: "%s 폴더가 발견되었습니다. 이 폴더를 무시 목록에 추가하시겠습니까? (npm 모듈이 삭제 후 재설치됩니다.)",
	DeletingFolder:        "%s 폴더 삭제중 (%s)...",
	ReinstallingModule:    "npm 모듈을 다시 설치하는 중...",
	UnsupportedPlatform:   "Sorry... %s is not a supported platform.",
	NotInsideDropbox:      "경고: %s 는 Dropbox 폴더 안에 있지 않습니다",
	IsIgnored:             "%s 는 무시 목록에 있습니다",
	IsNotIgnored:          "%s 는 무시 목록에 없습니다",
	Aborted:               "중단됨",
}

func SelectMessages(locale string) *Messages {
	m := englishMessages
	if MatchLanguage(locale) == language.Korean {
		m = koreanMessages
	}
	return &m
}
