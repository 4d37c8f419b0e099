package queries

import "github.com/superb-ai/onprem-go/pkg/params"

var CreateContent = Operation[params.CreateContent]{
	Name:  "contents.create",
	Field: "createContent",
	Document: `mutation CreateContent($key: String, $contentType: String!) {
	createContent(key: $key, contentType: $contentType) {
		content { id }
		uploadURL
	}
}`,
}

var CreateFolderContent = Operation[params.CreateFolderContent]{
	Name:  "contents.createFolder",
	Field: "createFolderContent",
	Document: `mutation CreateFolderContent($key: String) {
	createFolderContent(key: $key) {
		id
	}
}`,
}

var FileUploadURL = Operation[params.FileUploadURL]{
	Name:  "contents.fileUploadURL",
	Field: "contentFileUploadURL",
	Document: `mutation ContentFileUploadURL($contentId: ID!, $fileName: String!, $contentType: String) {
	contentFileUploadURL(contentId: $contentId, fileName: $fileName, contentType: $contentType)
}`,
}

var DownloadURL = Operation[params.DownloadURL]{
	Name:  "contents.downloadURL",
	Field: "contentDownloadURL",
	Document: `query ContentDownloadURL($contentId: ID!, $fileName: String) {
	contentDownloadURL(contentId: $contentId, fileName: $fileName)
}`,
}
