package queries

// Field selections shared by every operation returning the same entity.

const auditFields = `
		createdAt
		createdBy
		updatedAt
		updatedBy`

const datasetFields = `
		id
		name
		description` + auditFields

const sliceFields = `
		id
		datasetId
		name
		description
		isPinned` + auditFields

const metaFields = `
			key
			type
			value`

const dataFields = `
		id
		datasetId
		sliceIds
		key
		type
		scene {
			id
			type
			content { id }
			meta
		}
		thumbnail { id }
		annotation {
			versions {
				id
				content { id }
				meta
			}
			meta
		}
		predictions {
			setId
			content { id }
			meta
		}
		meta {` + metaFields + `
		}
		systemMeta {` + metaFields + `
		}` + auditFields

const trainingReportFields = `
			id
			name
			modelId
			contentId
			description` + auditFields

const modelFields = `
		id
		datasetId
		name
		description
		taskType
		status
		customDagId
		totalDataCount
		trainDataCount
		validationDataCount
		trainingParameters
		trainSliceId
		validationSliceId
		isPinned
		scoreKey
		scoreValue
		scoreUnit
		contents
		trainingReport {` + trainingReportFields + `
		}
		completedAt` + auditFields

const predictionSetFields = `
		id
		datasetId
		name
		annotationsContents
		evaluationResultContent` + auditFields

const diagnosisReportItemFields = `
			id
			diagnosisId
			name
			type
			contentId
			description
			discriminatorValue` + auditFields

const diagnosisFields = `
		id
		datasetId
		name
		description
		status
		scoreKey
		scoreValue
		scoreUnit
		diagnosisParameters
		contents
		sourceSliceId
		targetSliceId
		sourceDataCount
		targetDataCount
		diagnosisDataCount
		diagnosisReportItems {` + diagnosisReportItemFields + `
		}
		completedAt` + auditFields

const reportItemFields = `
			id
			reportId
			type
			title
			description
			contentId
			meta` + auditFields

const reportFields = `
		id
		datasetId
		title
		description
		status
		meta
		items {` + reportItemFields + `
		}
		completedAt` + auditFields
