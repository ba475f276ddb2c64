package urls

// Documentation URLs shown by the CLI and dialogs.
// All URLs point to the documentation site at https://muurk.github.io/kbforms/

// QnAFileFormat describes the .qna file layout, including the
// "> !# @url = ..." header that records a knowledge base's source.
const QnAFileFormat = "https://muurk.github.io/kbforms/reference/qna-files/"

// KnowledgeBaseNames lists the naming rules enforced when renaming.
const KnowledgeBaseNames = "https://muurk.github.io/kbforms/reference/naming/"

// ProvisioningHandoff explains how to hand resource provisioning to
// another developer. Default "Learn more" link of the handoff dialog.
const ProvisioningHandoff = "https://muurk.github.io/kbforms/guides/provisioning-handoff/"
