package util

import "errors"

var (
	ErrUserNotFound        = errors.New("المستخدم غير موجود")
	ErrEmailRegistered     = errors.New("هذا البريد الإلكتروني مسجل مسبقاً")
	ErrInvalidCredentials  = errors.New("البريد الإلكتروني أو كلمة المرور غير صحيحة")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrCourseNotFound      = errors.New("الدورة غير موجودة")
	ErrLessonNotFound      = errors.New("الدرس غير موجود")
	ErrExamNotFound        = errors.New("exam not found")
	ErrExamNotPublished    = errors.New("exam not published or not accessible")
	ErrRetakesNotAllowed   = errors.New("لا يُسمح بإعادة المحاولة لهذا الاختبار")
	ErrMaxAttemptsReached  = errors.New("لقد استنفدت عدد المحاولات المسموح بها")
	ErrAlreadyEnrolled     = errors.New("Already enrolled")
	ErrVideoNotFound       = errors.New("video not found")
	ErrVideoNotReady       = errors.New("video is still processing")
	ErrPackageNotFound     = errors.New("package file not found")
	ErrPathTraversal       = errors.New("invalid file path")
	ErrUnsupportedFileType = errors.New("نوع الملف غير مدعوم")
)
